package dto

import "github.com/carvoy/carvoy_backend/internal/core/domain"

// ValidateLicenseRequest asks for a driver-license format check.
type ValidateLicenseRequest struct {
	LicenseNumber string `json:"licenseNumber"`
	CountryCode   string `json:"countryCode" binding:"required,uppercase,len=2"`
}

// ValidateLicenseResponse is a field-level validation result.
type ValidateLicenseResponse struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// ToValidateLicenseResponse converts a domain validation result to its DTO.
func ToValidateLicenseResponse(r domain.LicenseValidationResult) ValidateLicenseResponse {
	return ValidateLicenseResponse{
		IsValid:      r.IsValid,
		ErrorMessage: r.ErrorMessage,
	}
}
