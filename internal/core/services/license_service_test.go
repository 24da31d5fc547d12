package services_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carvoy/carvoy_backend/internal/core/services"
)

func TestLicenseValidate_Boundaries(t *testing.T) {
	svc := services.NewLicenseService()

	countries := []string{"US", "GB", "DE", "FR", "PK", "IN", "SA", "AU", "ZZ"}
	for _, cc := range countries {
		rule := svc.RuleFor(cc)
		t.Run(cc, func(t *testing.T) {
			atMin := strings.Repeat("1", rule.MinLength)
			atMax := strings.Repeat("1", rule.MaxLength)
			belowMin := strings.Repeat("1", rule.MinLength-1)
			aboveMax := strings.Repeat("1", rule.MaxLength+1)

			assert.True(t, svc.Validate(atMin, cc).IsValid)
			assert.True(t, svc.Validate(atMax, cc).IsValid)

			res := svc.Validate(belowMin, cc)
			assert.False(t, res.IsValid)
			assert.Contains(t, res.ErrorMessage, rule.CountryName)
			assert.Contains(t, res.ErrorMessage, fmt.Sprintf("%d", rule.MinLength))

			res = svc.Validate(aboveMax, cc)
			assert.False(t, res.IsValid)
			assert.Contains(t, res.ErrorMessage, rule.CountryName)
			assert.Contains(t, res.ErrorMessage, fmt.Sprintf("%d", rule.MaxLength))
		})
	}
}

func TestLicenseValidate_Pakistan(t *testing.T) {
	svc := services.NewLicenseService()

	// 13 characters, the minimum for PK.
	assert.True(t, svc.Validate("1234567890123", "PK").IsValid)

	// 12 characters fails with a message naming the country and the bound.
	res := svc.Validate("123456789012", "PK")
	assert.False(t, res.IsValid)
	assert.Contains(t, res.ErrorMessage, "Pakistan")
	assert.Contains(t, res.ErrorMessage, "13")
}

func TestLicenseValidate_StripsSeparators(t *testing.T) {
	svc := services.NewLicenseService()

	// Hyphens and whitespace do not count toward the length.
	assert.True(t, svc.Validate("12345-67890-123", "PK").IsValid)
	assert.True(t, svc.Validate(" 1234567 890123 ", "PK").IsValid)

	// A value of only separators is treated as missing.
	res := svc.Validate(" --- ", "PK")
	assert.False(t, res.IsValid)
	assert.Contains(t, res.ErrorMessage, "required")
}

func TestLicenseValidate_UnknownCountryFallsBack(t *testing.T) {
	svc := services.NewLicenseService()

	rule := svc.RuleFor("XX")
	assert.Equal(t, 6, rule.MinLength)
	assert.Equal(t, 20, rule.MaxLength)

	assert.True(t, svc.Validate("123456", "XX").IsValid)
	assert.False(t, svc.Validate("12345", "XX").IsValid)
}
