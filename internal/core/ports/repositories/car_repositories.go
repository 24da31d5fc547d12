package repositories

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// CarListFilter narrows catalog queries. Zero values mean "no filter".
type CarListFilter struct {
	Category   domain.CarCategory
	ActiveOnly bool
	Limit      int
	AfterToken string // keyset pagination token, admin listings only
}

// CarReader defines read operations for the car catalog
type CarReader interface {
	// FindCarByID retrieves a single car.
	FindCarByID(ctx context.Context, carID string) (*domain.Car, error)

	// ListCars retrieves catalog entries matching the filter. Order is not
	// meaningful to the resolution pipeline.
	ListCars(ctx context.Context, filter CarListFilter) ([]domain.Car, string, error)
}

// CarWriter defines write operations for the car catalog
type CarWriter interface {
	// SaveCar persists a new car.
	SaveCar(ctx context.Context, car domain.Car) error

	// UpdateCar replaces a car's mutable fields.
	UpdateCar(ctx context.Context, car domain.Car) error

	// DeleteCar removes a car from the catalog.
	DeleteCar(ctx context.Context, carID string) error
}

// CarRepositoryFacade combines all car-related repository interfaces
type CarRepositoryFacade interface {
	CarReader
	CarWriter
}
