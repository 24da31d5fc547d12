package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
	"github.com/carvoy/carvoy_backend/internal/core/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookingsByTenant(ctx context.Context, tenantID string, limit int) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, paymentRef string, updaterUserID string) error {
	args := m.Called(ctx, bookingID, status, paymentRef, updaterUserID)
	return args.Error(0)
}

// --- Mock PaymentProcessor ---
type MockPaymentProcessor struct {
	mock.Mock
}

func (m *MockPaymentProcessor) CreateOrder(ctx context.Context, amount decimal.Decimal, currencyCode string, reference string) (*portsclients.PaymentOrder, error) {
	args := m.Called(ctx, amount, currencyCode, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsclients.PaymentOrder), args.Error(1)
}

func (m *MockPaymentProcessor) CaptureOrder(ctx context.Context, orderID string) (*portsclients.PaymentCapture, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsclients.PaymentCapture), args.Error(1)
}

// --- Mock TenantResolver (only the resolution side is needed here) ---
type MockTenantResolver struct {
	mock.Mock
}

func (m *MockTenantResolver) ResolveTenant(ctx context.Context, in dto.ResolveTenantRequest) (*domain.Tenant, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantResolver) EffectiveCatalog(tenant *domain.Tenant, cars []domain.Car) []domain.Car {
	args := m.Called(tenant, cars)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Car)
}

func (m *MockTenantResolver) GetEffectiveCatalog(ctx context.Context, tenant *domain.Tenant, category domain.CarCategory) ([]domain.Car, error) {
	args := m.Called(ctx, tenant, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

// --- Test Suite ---
type BookingServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockBookingRepository
	mockPayment  *MockPaymentProcessor
	mockResolver *MockTenantResolver
	service      *services.BookingService
	ctx          context.Context
	tenant       *domain.Tenant
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockBookingRepository)
	s.mockPayment = new(MockPaymentProcessor)
	s.mockResolver = new(MockTenantResolver)
	s.service = services.NewBookingService(s.mockRepo, s.mockResolver, services.NewLicenseService(), s.mockPayment, nil, nil)
	s.ctx = context.Background()
	s.tenant = &domain.Tenant{TenantID: "tn-1", DomainKey: "berlin.example.com", Active: true}
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func transferRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CarID:          "car-1",
		Category:       "transfer",
		CustomerName:   "Ada Lovelace",
		CustomerEmail:  "ada@example.com",
		CustomerPhone:  "+49123456789",
		PickupLocation: "BER Terminal 1",
		PickupTime:     time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
	}
}

func transferCatalog() []domain.Car {
	return []domain.Car{
		{CarID: "car-1", Name: "Sedan", Category: domain.CategoryTransfer, BasePrice: decimal.NewFromInt(60), CurrencyCode: "EUR", Active: true},
	}
}

func (s *BookingServiceTestSuite) TestCreateBooking_Transfer_UsesCatalogPrice() {
	req := transferRequest()
	s.mockResolver.On("GetEffectiveCatalog", s.ctx, s.tenant, domain.CategoryTransfer).Return(transferCatalog(), nil).Once()
	s.mockPayment.On("CreateOrder", s.ctx, decimal.NewFromInt(60), "EUR", mock.AnythingOfType("string")).
		Return(&portsclients.PaymentOrder{OrderID: "ord-1", ApprovalURL: "https://pay.example/ord-1"}, nil).Once()
	s.mockRepo.On("SaveBooking", s.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.Status == domain.BookingPending &&
			b.TotalPrice.Equal(decimal.NewFromInt(60)) &&
			b.PaymentOrderID == "ord-1" &&
			b.TenantID == "tn-1"
	})).Return(nil).Once()

	resp, err := s.service.CreateBooking(s.ctx, s.tenant, req)

	s.Require().NoError(err)
	s.Equal("ord-1", resp.OrderID)
	s.Equal("https://pay.example/ord-1", resp.ApprovalURL)
	s.Equal("pending", resp.Booking.Status)
	s.True(resp.Booking.TotalPrice.Equal(decimal.NewFromInt(60)))
	s.mockRepo.AssertExpectations(s.T())
	s.mockPayment.AssertExpectations(s.T())
	s.mockResolver.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCreateBooking_Rental_MultipliesByDays() {
	req := transferRequest()
	req.Category = "rental"
	req.RentalDays = 3
	req.LicenseNumber = "AB123456"
	req.LicenseCountry = "US"
	cars := []domain.Car{
		{CarID: "car-1", Name: "Compact", Category: domain.CategoryRental, BasePrice: decimal.NewFromInt(40), CurrencyCode: "EUR", Active: true},
	}
	s.mockResolver.On("GetEffectiveCatalog", s.ctx, s.tenant, domain.CategoryRental).Return(cars, nil).Once()
	s.mockPayment.On("CreateOrder", s.ctx, decimal.NewFromInt(120), "EUR", mock.AnythingOfType("string")).
		Return(&portsclients.PaymentOrder{OrderID: "ord-2"}, nil).Once()
	s.mockRepo.On("SaveBooking", s.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.TotalPrice.Equal(decimal.NewFromInt(120))
	})).Return(nil).Once()

	resp, err := s.service.CreateBooking(s.ctx, s.tenant, req)

	s.Require().NoError(err)
	s.True(resp.Booking.TotalPrice.Equal(decimal.NewFromInt(120)))
}

func (s *BookingServiceTestSuite) TestCreateBooking_Rental_RejectsBadLicense() {
	req := transferRequest()
	req.Category = "rental"
	req.RentalDays = 2
	req.LicenseNumber = "AB1"
	req.LicenseCountry = "US"

	_, err := s.service.CreateBooking(s.ctx, s.tenant, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockPayment.AssertNotCalled(s.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mockRepo.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreateBooking_CarHiddenByOverride() {
	req := transferRequest()
	req.CarID = "car-hidden"
	s.mockResolver.On("GetEffectiveCatalog", s.ctx, s.tenant, domain.CategoryTransfer).Return(transferCatalog(), nil).Once()

	_, err := s.service.CreateBooking(s.ctx, s.tenant, req)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockPayment.AssertNotCalled(s.T(), "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreateBooking_NilTenantFailsClosed() {
	_, err := s.service.CreateBooking(s.ctx, nil, transferRequest())

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrTenantUnavailable)
}

func (s *BookingServiceTestSuite) TestCreateBooking_PaymentFailureDoesNotPersist() {
	req := transferRequest()
	s.mockResolver.On("GetEffectiveCatalog", s.ctx, s.tenant, domain.CategoryTransfer).Return(transferCatalog(), nil).Once()
	s.mockPayment.On("CreateOrder", s.ctx, decimal.NewFromInt(60), "EUR", mock.AnythingOfType("string")).
		Return(nil, errors.New("gateway timeout")).Once()

	_, err := s.service.CreateBooking(s.ctx, s.tenant, req)

	s.Require().Error(err)
	s.mockRepo.AssertNotCalled(s.T(), "SaveBooking", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestConfirmBooking_Success() {
	pending := &domain.Booking{
		BookingID:      "bk-1",
		TenantID:       "tn-1",
		CarID:          "car-1",
		Status:         domain.BookingPending,
		PaymentOrderID: "ord-1",
	}
	s.mockRepo.On("FindBookingByID", s.ctx, "bk-1").Return(pending, nil).Once()
	s.mockPayment.On("CaptureOrder", s.ctx, "ord-1").
		Return(&portsclients.PaymentCapture{CaptureID: "cap-1", Status: "COMPLETED"}, nil).Once()
	s.mockRepo.On("UpdateBookingStatus", s.ctx, "bk-1", domain.BookingConfirmed, "cap-1", "tn-1").Return(nil).Once()

	booking, err := s.service.ConfirmBooking(s.ctx, "bk-1")

	s.Require().NoError(err)
	s.Equal(domain.BookingConfirmed, booking.Status)
	s.Equal("cap-1", booking.PaymentRef)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestConfirmBooking_CaptureDeclinedMarksFailed() {
	pending := &domain.Booking{
		BookingID:      "bk-1",
		TenantID:       "tn-1",
		Status:         domain.BookingPending,
		PaymentOrderID: "ord-1",
	}
	s.mockRepo.On("FindBookingByID", s.ctx, "bk-1").Return(pending, nil).Once()
	s.mockPayment.On("CaptureOrder", s.ctx, "ord-1").Return(nil, errors.New("INSTRUMENT_DECLINED")).Once()
	s.mockRepo.On("UpdateBookingStatus", s.ctx, "bk-1", domain.BookingFailed, "", "tn-1").Return(nil).Once()

	_, err := s.service.ConfirmBooking(s.ctx, "bk-1")

	s.Require().Error(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestConfirmBooking_AlreadyConfirmed() {
	confirmed := &domain.Booking{BookingID: "bk-1", Status: domain.BookingConfirmed}
	s.mockRepo.On("FindBookingByID", s.ctx, "bk-1").Return(confirmed, nil).Once()

	_, err := s.service.ConfirmBooking(s.ctx, "bk-1")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockPayment.AssertNotCalled(s.T(), "CaptureOrder", mock.Anything, mock.Anything)
}
