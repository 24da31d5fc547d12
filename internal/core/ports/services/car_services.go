package services

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// CarSvcFacade defines the back-office CRUD operations on the global catalog.
type CarSvcFacade interface {
	CreateCar(ctx context.Context, req dto.CreateCarRequest, creatorUserID string) (*domain.Car, error)
	UpdateCar(ctx context.Context, carID string, req dto.UpdateCarRequest, updaterUserID string) (*domain.Car, error)
	DeleteCar(ctx context.Context, carID string) error
	GetCarByID(ctx context.Context, carID string) (*domain.Car, error)

	// ListCars returns one admin page plus the token for the next one.
	ListCars(ctx context.Context, category string, limit int, afterToken string) ([]domain.Car, string, error)
}
