package services

import "github.com/carvoy/carvoy_backend/internal/core/domain"

// LicenseSvcFacade validates driver-license numbers against per-country
// length rules. Pure, no I/O.
type LicenseSvcFacade interface {
	// Validate strips whitespace and hyphens then checks the stripped length
	// against the country's rule (or a generic 6-20 fallback). It returns a
	// field-level result, never an error.
	Validate(licenseNumber, countryCode string) domain.LicenseValidationResult

	// RuleFor returns the length rule applied for a country code.
	RuleFor(countryCode string) domain.LicenseFormatRule
}
