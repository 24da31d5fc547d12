package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // display decimal places
	AuditFields
}

// BaseCurrencyCode is the fixed base every rate table is quoted against. The
// base currency's own rate is always 1.0.
const BaseCurrencyCode = "USD"

// RateTable is a snapshot of live exchange rates keyed by currency code,
// quoted relative to Base.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
}

// RateFor returns the quoted rate for a code, if present and positive.
func (t *RateTable) RateFor(code string) (decimal.Decimal, bool) {
	r, ok := t.Rates[code]
	if !ok || r.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, false
	}
	return r, true
}
