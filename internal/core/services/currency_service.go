package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/platform/cache"
)

// currencies is the static currency metadata table. Rates are live; metadata
// is not.
var currencies = map[string]domain.Currency{
	"USD": {CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
	"EUR": {CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
	"GBP": {CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
	"AED": {CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham", Precision: 2},
	"SAR": {CurrencyCode: "SAR", Symbol: "﷼", Name: "Saudi Riyal", Precision: 2},
	"PKR": {CurrencyCode: "PKR", Symbol: "₨", Name: "Pakistani Rupee", Precision: 0},
	"INR": {CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2},
	"TRY": {CurrencyCode: "TRY", Symbol: "₺", Name: "Turkish Lira", Precision: 2},
	"CAD": {CurrencyCode: "CAD", Symbol: "CA$", Name: "Canadian Dollar", Precision: 2},
	"AUD": {CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Precision: 2},
	"JPY": {CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	"CHF": {CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc", Precision: 2},
}

// countryCurrency maps ISO country codes to the currency shown by default.
// Unmapped countries fall back to USD.
var countryCurrency = map[string]string{
	"US": "USD", "GB": "GBP", "DE": "EUR", "FR": "EUR", "IT": "EUR",
	"ES": "EUR", "NL": "EUR", "AT": "EUR", "BE": "EUR", "IE": "EUR",
	"PT": "EUR", "AE": "AED", "SA": "SAR", "PK": "PKR", "IN": "INR",
	"TR": "TRY", "CA": "CAD", "AU": "AUD", "JP": "JPY", "CH": "CHF",
}

// CurrencyService provides the static currency table, live rate fetching and
// amount conversion.
type CurrencyService struct {
	rateSource portsclients.RateSource
	cache      *cache.Cache
	cacheTTL   time.Duration
}

// NewCurrencyService creates a new CurrencyService. cache may be nil, in which
// case every GetRates call hits the feed.
func NewCurrencyService(rateSource portsclients.RateSource, c *cache.Cache, ttl time.Duration) *CurrencyService {
	return &CurrencyService{
		rateSource: rateSource,
		cache:      c,
		cacheTTL:   ttl,
	}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// Convert computes amount * (toRate / fromRate). A zero or negative rate is a
// validation failure, never a silent Infinity/NaN. No rounding is applied so
// the function stays composable; display rounding is the caller's job.
func (s *CurrencyService) Convert(amount, fromRate, toRate decimal.Decimal) (decimal.Decimal, error) {
	if fromRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: from rate must be positive, got %s", apperrors.ErrValidation, fromRate)
	}
	if toRate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, fmt.Errorf("%w: to rate must be positive, got %s", apperrors.ErrValidation, toRate)
	}
	return amount.Mul(toRate).Div(fromRate), nil
}

// GetRates returns the live rate table for a base currency, served from the
// in-process cache when fresh. All fetch failures surface as
// apperrors.ErrRatesUnavailable so callers can degrade to unconverted amounts.
func (s *CurrencyService) GetRates(ctx context.Context, base string) (*domain.RateTable, error) {
	base = strings.ToUpper(base)
	if len(base) != 3 {
		return nil, fmt.Errorf("%w: base currency code must be 3 letters", apperrors.ErrValidation)
	}

	cacheKey := "rates:" + base
	if s.cache != nil {
		if data, ok := s.cache.Get(cacheKey); ok {
			var table domain.RateTable
			if err := json.Unmarshal(data, &table); err == nil {
				return &table, nil
			}
			s.cache.Delete(cacheKey)
		}
	}

	table, err := s.rateSource.FetchRates(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRatesUnavailable, err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(table); err == nil {
			s.cache.Set(cacheKey, data, s.cacheTTL)
		}
	}

	return table, nil
}

// ConvertAmount converts between two currency codes using the live table
// quoted against the fixed base.
func (s *CurrencyService) ConvertAmount(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if fromCode == toCode {
		return amount, nil
	}

	table, err := s.GetRates(ctx, domain.BaseCurrencyCode)
	if err != nil {
		return decimal.Decimal{}, err
	}

	fromRate, ok := table.RateFor(fromCode)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate quoted for %s", apperrors.ErrValidation, fromCode)
	}
	toRate, ok := table.RateFor(toCode)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate quoted for %s", apperrors.ErrValidation, toCode)
	}

	return s.Convert(amount, fromRate, toRate)
}

// ListCurrencies returns the static currency metadata table, sorted by code.
func (s *CurrencyService) ListCurrencies() []domain.Currency {
	out := make([]domain.Currency, 0, len(currencies))
	for _, c := range currencies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out
}

// GetCurrencyByCode looks up one currency's metadata.
func (s *CurrencyService) GetCurrencyByCode(code string) (*domain.Currency, error) {
	c, ok := currencies[strings.ToUpper(code)]
	if !ok {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	}
	return &c, nil
}

// CurrencyForCountry maps an ISO country code to the default display currency.
// Unmapped countries default to USD.
func CurrencyForCountry(countryCode string) string {
	if code, ok := countryCurrency[strings.ToUpper(countryCode)]; ok {
		return code
	}
	return "USD"
}
