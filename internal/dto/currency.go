package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// RatesResponse is the live rate table keyed by the requested base.
type RatesResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
}

// ConvertRequest asks for an amount conversion between two currency codes.
type ConvertRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	FromCode string          `json:"fromCode" binding:"required,uppercase,len=3"`
	ToCode   string          `json:"toCode" binding:"required,uppercase,len=3"`
}

// ConvertResponse carries the conversion result. When the rate feed is down
// Converted is false and Amount echoes the source amount unconverted; the UI
// must keep rendering.
type ConvertResponse struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Converted    bool            `json:"converted"`
}

// ToCurrencyResponse converts a domain Currency to a CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Precision:    curr.Precision,
	}
}

// ToRatesResponse converts a rate table to its response DTO.
func ToRatesResponse(t *domain.RateTable) RatesResponse {
	return RatesResponse{
		Base:      t.Base,
		Rates:     t.Rates,
		FetchedAt: t.FetchedAt,
	}
}
