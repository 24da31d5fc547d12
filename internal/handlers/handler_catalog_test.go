package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// --- Mock TenantSvcFacade ---
type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) ResolveTenant(ctx context.Context, in dto.ResolveTenantRequest) (*domain.Tenant, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) EffectiveCatalog(tenant *domain.Tenant, cars []domain.Car) []domain.Car {
	args := m.Called(tenant, cars)
	return args.Get(0).([]domain.Car)
}

func (m *MockTenantService) GetEffectiveCatalog(ctx context.Context, tenant *domain.Tenant, category domain.CarCategory) ([]domain.Car, error) {
	args := m.Called(ctx, tenant, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockTenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, updaterUserID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) DeleteTenant(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func (m *MockTenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

type CatalogHandlerTestSuite struct {
	suite.Suite
	mockTenantSvc *MockTenantService
	router        *gin.Engine
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockTenantSvc = new(MockTenantService)
	s.router = gin.New()
	registerCatalogRoutes(s.router.Group("/api/v1"), s.mockTenantSvc)
}

func (s *CatalogHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CatalogHandlerTestSuite) TestGetCatalogServesTenantPrices() {
	tenant := &domain.Tenant{
		TenantID:  "t-1",
		DomainKey: "rent.example.com",
		Active:    true,
	}
	cars := []domain.Car{
		{
			CarID:        "car-1",
			Name:         "Economy Sedan",
			Category:     domain.CategoryTransfer,
			Seats:        4,
			BasePrice:    decimal.NewFromInt(60), // tenant override already applied
			CurrencyCode: "EUR",
		},
	}

	s.mockTenantSvc.On("ResolveTenant", mock.Anything, mock.MatchedBy(func(in dto.ResolveTenantRequest) bool {
		return in.Host == "rent.example.com" && !in.Bypass
	})).Return(tenant, nil)
	s.mockTenantSvc.On("GetEffectiveCatalog", mock.Anything, tenant, domain.CarCategory("")).Return(cars, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Host = "rent.example.com"
	w := s.serve(req)

	require.Equal(s.T(), http.StatusOK, w.Code)

	var resp dto.CatalogResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(s.T(), "rent.example.com", resp.Domain)
	require.Len(s.T(), resp.Cars, 1)
	require.True(s.T(), resp.Cars[0].Price.Equal(decimal.NewFromInt(60)))
	require.Equal(s.T(), "EUR", resp.Cars[0].CurrencyCode)
	s.mockTenantSvc.AssertExpectations(s.T())
}

func (s *CatalogHandlerTestSuite) TestGetCatalogPassesOverrideAndEmbedSignals() {
	tenant := &domain.Tenant{TenantID: "t-2", DomainKey: "partner.example.org", Active: true}

	s.mockTenantSvc.On("ResolveTenant", mock.Anything, mock.MatchedBy(func(in dto.ResolveTenantRequest) bool {
		return in.OverrideKey == "partner.example.org" &&
			in.Embedded &&
			in.Referrer == "https://partner.example.org/book" &&
			in.Bypass
	})).Return(tenant, nil)
	s.mockTenantSvc.On("GetEffectiveCatalog", mock.Anything, tenant, domain.CategoryRental).Return([]domain.Car{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?domain=partner.example.org&allcars=1&category=rental", nil)
	req.Header.Set("Referer", "https://partner.example.org/book")
	req.Header.Set("X-Embedded", "1")
	w := s.serve(req)

	require.Equal(s.T(), http.StatusOK, w.Code)
	s.mockTenantSvc.AssertExpectations(s.T())
}

func (s *CatalogHandlerTestSuite) TestGetCatalogFailsClosedWithoutTenant() {
	s.mockTenantSvc.On("ResolveTenant", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrTenantUnavailable)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	req.Host = "unknown.example.net"
	w := s.serve(req)

	require.Equal(s.T(), http.StatusServiceUnavailable, w.Code)
	s.mockTenantSvc.AssertNotCalled(s.T(), "GetEffectiveCatalog", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CatalogHandlerTestSuite) TestGetCatalogRejectsUnknownCategory() {
	tenant := &domain.Tenant{TenantID: "t-1", DomainKey: "rent.example.com", Active: true}

	s.mockTenantSvc.On("ResolveTenant", mock.Anything, mock.Anything).Return(tenant, nil)
	s.mockTenantSvc.On("GetEffectiveCatalog", mock.Anything, tenant, domain.CarCategory("boat")).
		Return(nil, apperrors.ErrValidation)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?category=boat", nil)
	req.Host = "rent.example.com"
	w := s.serve(req)

	require.Equal(s.T(), http.StatusBadRequest, w.Code)
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
