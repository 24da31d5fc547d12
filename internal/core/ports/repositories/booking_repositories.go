package repositories

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// BookingReader defines read operations for bookings
type BookingReader interface {
	// FindBookingByID retrieves a booking by its ID.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookingsByTenant retrieves bookings for one tenant, newest first.
	ListBookingsByTenant(ctx context.Context, tenantID string, limit int) ([]domain.Booking, error)
}

// BookingWriter defines write operations for bookings
type BookingWriter interface {
	// SaveBooking persists a new booking.
	SaveBooking(ctx context.Context, booking domain.Booking) error

	// UpdateBookingStatus transitions a booking's payment state.
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, paymentRef string, updaterUserID string) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
