package services

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// BookingSvcFacade creates and confirms customer bookings.
type BookingSvcFacade interface {
	// CreateBooking validates the request, prices the car from the
	// tenant-effective catalog and opens a payment order. The returned booking
	// is in pending state.
	CreateBooking(ctx context.Context, tenant *domain.Tenant, req dto.CreateBookingRequest) (*dto.BookingCreatedResponse, error)

	// ConfirmBooking captures the payment order and transitions the booking to
	// confirmed (or failed when capture is declined).
	ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error)

	// GetBookingByID retrieves a booking.
	GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)
}
