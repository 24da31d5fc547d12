package dto

import (
	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// CatalogCarResponse is one car on the public booking site, after the tenant
// transform. Prices here already carry any tenant override.
type CatalogCarResponse struct {
	CarID        string          `json:"carID"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Seats        int             `json:"seats"`
	LuggageCount int             `json:"luggageCount"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currencyCode"`
	ImageURL     string          `json:"imageURL,omitempty"`
}

// CatalogResponse is the public catalog payload for the resolved tenant.
type CatalogResponse struct {
	Domain string               `json:"domain"`
	Cars   []CatalogCarResponse `json:"cars"`
}

// ToCatalogResponse converts a tenant-effective car list to the public payload.
func ToCatalogResponse(tenant *domain.Tenant, cars []domain.Car) CatalogResponse {
	out := make([]CatalogCarResponse, len(cars))
	for i, car := range cars {
		out[i] = CatalogCarResponse{
			CarID:        car.CarID,
			Name:         car.Name,
			Category:     string(car.Category),
			Seats:        car.Seats,
			LuggageCount: car.LuggageCount,
			Price:        car.BasePrice,
			CurrencyCode: car.CurrencyCode,
			ImageURL:     car.ImageURL,
		}
	}
	return CatalogResponse{
		Domain: tenant.DomainKey,
		Cars:   out,
	}
}
