package domain

// Theme holds the visual tokens a tenant site renders with. At most one theme
// is globally active at a time; the admin layer enforces that on activation.
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

// Tokens flattens the theme into the token map the presentation layer applies.
// The pipeline itself never touches shared style state.
func (t *Theme) Tokens() map[string]string {
	return map[string]string{
		"primary":      t.PrimaryColor,
		"secondary":    t.SecondaryColor,
		"background":   t.BackgroundColor,
		"accent":       t.AccentColor,
		"success":      t.SuccessColor,
		"warning":      t.WarningColor,
		"text":         t.TextColor,
		"borderRadius": t.BorderRadius,
		"fontFamily":   t.FontFamily,
	}
}

// DefaultTheme is the built-in last resort so the UI is never left without a
// renderable theme.
func DefaultTheme() *Theme {
	return &Theme{
		ThemeID:         "default",
		Name:            "Carvoy Default",
		PrimaryColor:    "#1a73e8",
		SecondaryColor:  "#174ea6",
		BackgroundColor: "#ffffff",
		AccentColor:     "#fbbc04",
		SuccessColor:    "#188038",
		WarningColor:    "#d93025",
		TextColor:       "#202124",
		BorderRadius:    "8px",
		FontFamily:      "'Inter', sans-serif",
		Active:          false,
	}
}
