package domain

// LicenseFormatRule is the per-country length window a driver-license number
// must fall into. Formats are checked by length only; character classes vary
// too much across issuing authorities to be worth validating.
type LicenseFormatRule struct {
	MinLength   int    `json:"minLength"`
	MaxLength   int    `json:"maxLength"`
	CountryName string `json:"countryName"`
	Description string `json:"description"`
}

// LicenseValidationResult is surfaced directly as a field-level message, never
// as an error.
type LicenseValidationResult struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
