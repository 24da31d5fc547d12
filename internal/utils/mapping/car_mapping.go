package mapping

import (
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/models"
)

// ToModelCar converts a domain Car to a model Car
func ToModelCar(d domain.Car) models.Car {
	return models.Car{
		CarID:        d.CarID,
		Name:         d.Name,
		Category:     string(d.Category),
		Seats:        d.Seats,
		LuggageCount: d.LuggageCount,
		BasePrice:    d.BasePrice,
		CurrencyCode: d.CurrencyCode,
		ImageURL:     d.ImageURL,
		Active:       d.Active,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCar converts a model Car to a domain Car
func ToDomainCar(m models.Car) domain.Car {
	return domain.Car{
		CarID:        m.CarID,
		Name:         m.Name,
		Category:     domain.CarCategory(m.Category),
		Seats:        m.Seats,
		LuggageCount: m.LuggageCount,
		BasePrice:    m.BasePrice,
		CurrencyCode: m.CurrencyCode,
		ImageURL:     m.ImageURL,
		Active:       m.Active,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCarSlice converts a slice of model Cars to a slice of domain Cars
func ToDomainCarSlice(ms []models.Car) []domain.Car {
	ds := make([]domain.Car, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCar(m)
	}
	return ds
}
