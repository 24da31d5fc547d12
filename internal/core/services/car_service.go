package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// CarService implements the admin CRUD surface for the global car catalog.
type CarService struct {
	carRepo portsrepo.CarRepositoryFacade
}

func NewCarService(carRepo portsrepo.CarRepositoryFacade) *CarService {
	return &CarService{carRepo: carRepo}
}

var _ portssvc.CarSvcFacade = (*CarService)(nil)

// CreateCar adds a new car to the catalog.
func (s *CarService) CreateCar(ctx context.Context, req dto.CreateCarRequest, creatorUserID string) (*domain.Car, error) {
	category := domain.CarCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	}
	if req.BasePrice.IsNegative() || req.BasePrice.IsZero() {
		return nil, fmt.Errorf("%w: base price must be positive", apperrors.ErrValidation)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	car := domain.Car{
		CarID:        uuid.NewString(),
		Name:         req.Name,
		Category:     category,
		Seats:        req.Seats,
		LuggageCount: req.LuggageCount,
		BasePrice:    req.BasePrice,
		CurrencyCode: req.CurrencyCode,
		ImageURL:     req.ImageURL,
		Active:       active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.carRepo.SaveCar(ctx, car); err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	return &car, nil
}

// UpdateCar replaces a car's mutable fields. Nil request fields leave the
// stored value untouched.
func (s *CarService) UpdateCar(ctx context.Context, carID string, req dto.UpdateCarRequest, updaterUserID string) (*domain.Car, error) {
	car, err := s.carRepo.FindCarByID(ctx, carID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		car.Name = *req.Name
	}
	if req.Category != nil {
		category := domain.CarCategory(*req.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, *req.Category)
		}
		car.Category = category
	}
	if req.Seats != nil {
		car.Seats = *req.Seats
	}
	if req.LuggageCount != nil {
		car.LuggageCount = *req.LuggageCount
	}
	if req.BasePrice != nil {
		if req.BasePrice.IsNegative() || req.BasePrice.IsZero() {
			return nil, fmt.Errorf("%w: base price must be positive", apperrors.ErrValidation)
		}
		car.BasePrice = *req.BasePrice
	}
	if req.CurrencyCode != nil {
		car.CurrencyCode = *req.CurrencyCode
	}
	if req.ImageURL != nil {
		car.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		car.Active = *req.Active
	}

	car.LastUpdatedAt = time.Now()
	car.LastUpdatedBy = updaterUserID

	if err := s.carRepo.UpdateCar(ctx, *car); err != nil {
		return nil, fmt.Errorf("failed to update car %s: %w", carID, err)
	}

	return car, nil
}

// DeleteCar removes a car from the catalog.
func (s *CarService) DeleteCar(ctx context.Context, carID string) error {
	return s.carRepo.DeleteCar(ctx, carID)
}

// GetCarByID retrieves a single car.
func (s *CarService) GetCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	return s.carRepo.FindCarByID(ctx, carID)
}

// ListCars returns one admin page plus the token for the next one.
func (s *CarService) ListCars(ctx context.Context, category string, limit int, afterToken string) ([]domain.Car, string, error) {
	filter := portsrepo.CarListFilter{
		Limit:      limit,
		AfterToken: afterToken,
	}
	if category != "" {
		c := domain.CarCategory(category)
		if !c.IsValid() {
			return nil, "", fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
		}
		filter.Category = c
	}
	return s.carRepo.ListCars(ctx, filter)
}
