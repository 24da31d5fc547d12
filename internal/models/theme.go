package models

// Theme represents a row in the themes table.
type Theme struct {
	ThemeID         string `json:"themeID"`
	Name            string `json:"name"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	AccentColor     string `json:"accentColor"`
	SuccessColor    string `json:"successColor"`
	WarningColor    string `json:"warningColor"`
	TextColor       string `json:"textColor"`
	BorderRadius    string `json:"borderRadius"`
	FontFamily      string `json:"fontFamily"`
	Active          bool   `json:"active"`
	AuditFields
}
