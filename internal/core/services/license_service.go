package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
)

// licenseFormats is the static per-country length table. Formats differ too
// much across issuing authorities to check anything beyond length, so the
// windows are deliberately loose.
var licenseFormats = map[string]domain.LicenseFormatRule{
	"US": {MinLength: 4, MaxLength: 16, CountryName: "United States", Description: "Varies by state, 4-16 characters"},
	"GB": {MinLength: 16, MaxLength: 18, CountryName: "United Kingdom", Description: "16-18 characters"},
	"DE": {MinLength: 9, MaxLength: 11, CountryName: "Germany", Description: "9-11 characters"},
	"FR": {MinLength: 12, MaxLength: 15, CountryName: "France", Description: "12-15 characters"},
	"IT": {MinLength: 10, MaxLength: 10, CountryName: "Italy", Description: "10 characters"},
	"ES": {MinLength: 8, MaxLength: 9, CountryName: "Spain", Description: "8-9 characters"},
	"PK": {MinLength: 13, MaxLength: 15, CountryName: "Pakistan", Description: "13-15 characters"},
	"IN": {MinLength: 13, MaxLength: 16, CountryName: "India", Description: "13-16 characters"},
	"AE": {MinLength: 7, MaxLength: 15, CountryName: "United Arab Emirates", Description: "7-15 characters"},
	"SA": {MinLength: 10, MaxLength: 10, CountryName: "Saudi Arabia", Description: "10 characters"},
	"TR": {MinLength: 6, MaxLength: 6, CountryName: "Turkey", Description: "6 characters"},
	"CA": {MinLength: 5, MaxLength: 17, CountryName: "Canada", Description: "Varies by province, 5-17 characters"},
	"AU": {MinLength: 6, MaxLength: 10, CountryName: "Australia", Description: "6-10 characters"},
}

// genericLicenseRule is applied for country codes without a specific entry.
var genericLicenseRule = domain.LicenseFormatRule{
	MinLength:   6,
	MaxLength:   20,
	CountryName: "your country",
	Description: "6-20 characters",
}

// LicenseService validates driver-license numbers against the static format
// table. It is pure: no network, no state.
type LicenseService struct{}

// NewLicenseService creates a new LicenseService.
func NewLicenseService() *LicenseService {
	return &LicenseService{}
}

var _ portssvc.LicenseSvcFacade = (*LicenseService)(nil)

// RuleFor returns the length rule applied for a country code, falling back to
// the generic rule for unknown codes.
func (s *LicenseService) RuleFor(countryCode string) domain.LicenseFormatRule {
	if rule, ok := licenseFormats[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return rule
	}
	return genericLicenseRule
}

// Validate strips whitespace and hyphens from the license number and checks
// the remaining length against the country's rule. The result is a field-level
// message, never an error.
func (s *LicenseService) Validate(licenseNumber, countryCode string) domain.LicenseValidationResult {
	rule := s.RuleFor(countryCode)

	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, licenseNumber)

	if stripped == "" {
		return domain.LicenseValidationResult{
			IsValid:      false,
			ErrorMessage: "License number is required",
		}
	}

	if len(stripped) < rule.MinLength {
		return domain.LicenseValidationResult{
			IsValid:      false,
			ErrorMessage: fmt.Sprintf("License number for %s must be at least %d characters", rule.CountryName, rule.MinLength),
		}
	}

	if len(stripped) > rule.MaxLength {
		return domain.LicenseValidationResult{
			IsValid:      false,
			ErrorMessage: fmt.Sprintf("License number for %s must be at most %d characters", rule.CountryName, rule.MaxLength),
		}
	}

	return domain.LicenseValidationResult{IsValid: true}
}
