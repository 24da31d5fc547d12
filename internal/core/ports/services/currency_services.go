package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// CurrencySvcFacade provides rate fetching and amount conversion.
type CurrencySvcFacade interface {
	// Convert computes amount * (toRate / fromRate). Zero or negative rates
	// fail with apperrors.ErrValidation instead of silently producing
	// Infinity/NaN. No rounding is applied.
	Convert(amount, fromRate, toRate decimal.Decimal) (decimal.Decimal, error)

	// GetRates returns the live rate table for a base currency, cached for a
	// short window. On failure it returns apperrors.ErrRatesUnavailable.
	GetRates(ctx context.Context, base string) (*domain.RateTable, error)

	// ConvertAmount converts between two currency codes using the live table.
	ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)

	// ListCurrencies returns the static currency metadata table.
	ListCurrencies() []domain.Currency

	// GetCurrencyByCode looks up one currency's metadata.
	GetCurrencyByCode(code string) (*domain.Currency, error)
}
