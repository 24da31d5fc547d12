package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
	"github.com/carvoy/carvoy_backend/internal/utils"
)

// BookingService creates and confirms customer bookings. Payment is a black
// box behind the PaymentProcessor port.
type BookingService struct {
	bookingRepo portsrepo.BookingRepositoryFacade
	tenantSvc   portssvc.TenantResolverSvc
	licenseSvc  portssvc.LicenseSvcFacade
	payment     portsclients.PaymentProcessor
	posthog     *utils.PosthogClientWrapper
	logger      *slog.Logger
}

// NewBookingService creates a new BookingService. posthog may be an
// uninitialized wrapper; events are then dropped.
func NewBookingService(
	bookingRepo portsrepo.BookingRepositoryFacade,
	tenantSvc portssvc.TenantResolverSvc,
	licenseSvc portssvc.LicenseSvcFacade,
	payment portsclients.PaymentProcessor,
	posthog *utils.PosthogClientWrapper,
	logger *slog.Logger,
) *BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingService{
		bookingRepo: bookingRepo,
		tenantSvc:   tenantSvc,
		licenseSvc:  licenseSvc,
		payment:     payment,
		posthog:     posthog,
		logger:      logger,
	}
}

var _ portssvc.BookingSvcFacade = (*BookingService)(nil)

// CreateBooking validates the request, prices the car from the
// tenant-effective catalog and opens a payment order. The client never
// supplies a price; the tenant's override price is authoritative.
func (s *BookingService) CreateBooking(ctx context.Context, tenant *domain.Tenant, req dto.CreateBookingRequest) (*dto.BookingCreatedResponse, error) {
	if tenant == nil || !tenant.Active {
		return nil, fmt.Errorf("%w: booking requires a resolved tenant", apperrors.ErrTenantUnavailable)
	}

	category := domain.CarCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, req.Category)
	}

	if category == domain.CategoryRental {
		result := s.licenseSvc.Validate(req.LicenseNumber, req.LicenseCountry)
		if !result.IsValid {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, result.ErrorMessage)
		}
	}

	car, err := s.findBookableCar(ctx, tenant, category, req.CarID)
	if err != nil {
		return nil, err
	}

	total := car.BasePrice
	if category == domain.CategoryRental {
		total = total.Mul(decimal.NewFromInt(int64(rentalDays(req))))
	}

	bookingID := uuid.NewString()
	order, err := s.payment.CreateOrder(ctx, total, car.CurrencyCode, bookingID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Payment order creation failed",
			slog.String("booking_id", bookingID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	now := time.Now()
	booking := domain.Booking{
		BookingID:      bookingID,
		TenantID:       tenant.TenantID,
		CarID:          car.CarID,
		Category:       category,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		LicenseNumber:  req.LicenseNumber,
		LicenseCountry: req.LicenseCountry,
		PickupLocation: req.PickupLocation,
		DropoffLoc:     req.DropoffLocation,
		PickupTime:     req.PickupTime,
		DropoffTime:    req.DropoffTime,
		TotalPrice:     total,
		CurrencyCode:   car.CurrencyCode,
		Status:         domain.BookingPending,
		PaymentOrderID: order.OrderID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     tenant.TenantID,
			LastUpdatedAt: now,
			LastUpdatedBy: tenant.TenantID,
		},
	}

	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.posthog != nil {
		s.posthog.Enqueue(tenant.TenantID, "booking_created", map[string]any{
			"booking_id": booking.BookingID,
			"car_id":     booking.CarID,
			"category":   string(booking.Category),
			"currency":   booking.CurrencyCode,
		})
	}

	resp := &dto.BookingCreatedResponse{
		Booking:     dto.ToBookingResponse(&booking),
		OrderID:     order.OrderID,
		ApprovalURL: order.ApprovalURL,
	}
	return resp, nil
}

// ConfirmBooking captures the payment order and transitions the booking. A
// declined capture marks the booking failed.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != domain.BookingPending {
		return nil, fmt.Errorf("%w: booking %s is already %s", apperrors.ErrDuplicate, bookingID, booking.Status)
	}

	capture, err := s.payment.CaptureOrder(ctx, booking.PaymentOrderID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Payment capture failed",
			slog.String("booking_id", bookingID),
			slog.String("order_id", booking.PaymentOrderID),
			slog.String("error", err.Error()),
		)
		if updErr := s.bookingRepo.UpdateBookingStatus(ctx, bookingID, domain.BookingFailed, "", booking.TenantID); updErr != nil {
			s.logger.ErrorContext(ctx, "Failed to mark booking failed", slog.String("booking_id", bookingID), slog.String("error", updErr.Error()))
		}
		return nil, fmt.Errorf("payment capture failed: %w", err)
	}

	if err := s.bookingRepo.UpdateBookingStatus(ctx, bookingID, domain.BookingConfirmed, capture.CaptureID, booking.TenantID); err != nil {
		return nil, fmt.Errorf("failed to confirm booking %s: %w", bookingID, err)
	}

	booking.Status = domain.BookingConfirmed
	booking.PaymentRef = capture.CaptureID

	if s.posthog != nil {
		s.posthog.Enqueue(booking.TenantID, "booking_confirmed", map[string]any{
			"booking_id": booking.BookingID,
			"car_id":     booking.CarID,
		})
	}

	return booking, nil
}

// GetBookingByID retrieves a booking.
func (s *BookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.bookingRepo.FindBookingByID(ctx, bookingID)
}

func (s *BookingService) findBookableCar(ctx context.Context, tenant *domain.Tenant, category domain.CarCategory, carID string) (*domain.Car, error) {
	cars, err := s.tenantSvc.GetEffectiveCatalog(ctx, tenant, category)
	if err != nil {
		return nil, err
	}
	for i := range cars {
		if cars[i].CarID == carID {
			return &cars[i], nil
		}
	}
	// Either the car does not exist or the tenant hides it; indistinguishable
	// on purpose.
	return nil, fmt.Errorf("%w: car %s is not bookable on this domain", apperrors.ErrNotFound, carID)
}

func rentalDays(req dto.CreateBookingRequest) int {
	if req.RentalDays > 0 {
		return req.RentalDays
	}
	if req.DropoffTime.After(req.PickupTime) {
		days := int(req.DropoffTime.Sub(req.PickupTime).Hours() / 24)
		if req.DropoffTime.Sub(req.PickupTime)%(24*time.Hour) != 0 {
			days++
		}
		if days > 0 {
			return days
		}
	}
	return 1
}
