package models

import "github.com/shopspring/decimal"

// Car represents a row in the cars table.
type Car struct {
	CarID        string          `json:"carID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"` // transfer | rental
	Seats        int             `json:"seats"`
	LuggageCount int             `json:"luggageCount"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	CurrencyCode string          `json:"currencyCode"`
	ImageURL     string          `json:"imageURL"`
	Active       bool            `json:"active"`
	AuditFields
}
