package domain

import "github.com/shopspring/decimal"

// CarCategory distinguishes airport-transfer vehicles from daily rentals.
type CarCategory string

const (
	CategoryTransfer CarCategory = "transfer"
	CategoryRental   CarCategory = "rental"
)

// IsValid checks whether the category is one of the known values.
func (c CarCategory) IsValid() bool {
	return c == CategoryTransfer || c == CategoryRental
}

// Car represents a vehicle in the global catalog. The catalog is owned by the
// admin back-office; the resolution pipeline only reads it.
type Car struct {
	CarID        string          `json:"carID"`
	Name         string          `json:"name"`
	Category     CarCategory     `json:"category"`
	Seats        int             `json:"seats"`
	LuggageCount int             `json:"luggageCount"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	CurrencyCode string          `json:"currencyCode"`
	ImageURL     string          `json:"imageURL"`
	Active       bool            `json:"active"`
	AuditFields
}
