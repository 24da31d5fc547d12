package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// CreateCarRequest defines the data needed to add a car to the catalog.
type CreateCarRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category" binding:"required,oneof=transfer rental"`
	Seats        int             `json:"seats" binding:"required,gt=0"`
	LuggageCount int             `json:"luggageCount" binding:"gte=0"`
	BasePrice    decimal.Decimal `json:"basePrice" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	ImageURL     string          `json:"imageURL" binding:"omitempty,url"`
	Active       *bool           `json:"active"`
}

// UpdateCarRequest defines the mutable car fields. Nil pointers leave the
// stored value untouched.
type UpdateCarRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category" binding:"omitempty,oneof=transfer rental"`
	Seats        *int             `json:"seats" binding:"omitempty,gt=0"`
	LuggageCount *int             `json:"luggageCount" binding:"omitempty,gte=0"`
	BasePrice    *decimal.Decimal `json:"basePrice"`
	CurrencyCode *string          `json:"currencyCode" binding:"omitempty,uppercase,len=3"`
	ImageURL     *string          `json:"imageURL" binding:"omitempty,url"`
	Active       *bool            `json:"active"`
}

// CarResponse defines the data returned for a catalog car (admin surface,
// includes the active flag).
type CarResponse struct {
	CarID         string          `json:"carID"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Seats         int             `json:"seats"`
	LuggageCount  int             `json:"luggageCount"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	CurrencyCode  string          `json:"currencyCode"`
	ImageURL      string          `json:"imageURL,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListCarsResponse wraps an admin car page with its pagination token.
type ListCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	NextToken string        `json:"nextToken,omitempty"`
}

// ToCarResponse converts a domain Car to a CarResponse DTO
func ToCarResponse(car *domain.Car) CarResponse {
	return CarResponse{
		CarID:         car.CarID,
		Name:          car.Name,
		Category:      string(car.Category),
		Seats:         car.Seats,
		LuggageCount:  car.LuggageCount,
		BasePrice:     car.BasePrice,
		CurrencyCode:  car.CurrencyCode,
		ImageURL:      car.ImageURL,
		Active:        car.Active,
		CreatedAt:     car.CreatedAt,
		LastUpdatedAt: car.LastUpdatedAt,
	}
}
