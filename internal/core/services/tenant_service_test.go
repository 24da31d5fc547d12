package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	"github.com/carvoy/carvoy_backend/internal/core/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByDomainKey(ctx context.Context, domainKey string) (*domain.Tenant, error) {
	args := m.Called(ctx, domainKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) DeleteTenant(ctx context.Context, tenantID string) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// --- Mock CarReader ---
type MockCarReader struct {
	mock.Mock
}

func (m *MockCarReader) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCarReader) ListCars(ctx context.Context, filter portsrepo.CarListFilter) ([]domain.Car, string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Car), args.String(1), args.Error(2)
}

// --- Test Suite ---
type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	mockCarReader  *MockCarReader
	service        *services.TenantService
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockCarReader = new(MockCarReader)
	suite.service = services.NewTenantService(suite.mockTenantRepo, suite.mockCarReader, false, nil)
}

func activeTenant(key string) *domain.Tenant {
	return &domain.Tenant{
		TenantID:  "t-" + key,
		DomainKey: key,
		Name:      key,
		Active:    true,
	}
}

func (suite *TenantServiceTestSuite) TestResolveTenant_OverrideKeyWins() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "override.example.com").
		Return(activeTenant("override.example.com"), nil).Once()

	tenant, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{
		OverrideKey: "https://Override.Example.com/some/path",
		Referrer:    "https://parent.example.com/",
		Host:        "host.example.com",
		Embedded:    true,
	})

	suite.Require().NoError(err)
	suite.Equal("override.example.com", tenant.DomainKey)
	suite.mockTenantRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestResolveTenant_EmbeddedUsesReferrer() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "parent.example.com").
		Return(activeTenant("parent.example.com"), nil).Once()

	tenant, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{
		Referrer: "https://parent.example.com/booking",
		Host:     "widget.example.com",
		Embedded: true,
	})

	suite.Require().NoError(err)
	suite.Equal("parent.example.com", tenant.DomainKey)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_NotEmbeddedIgnoresReferrer() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "host.example.com").
		Return(activeTenant("host.example.com"), nil).Once()

	tenant, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{
		Referrer: "https://parent.example.com/",
		Host:     "host.example.com",
		Embedded: false,
	})

	suite.Require().NoError(err)
	suite.Equal("host.example.com", tenant.DomainKey)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_BadReferrerFallsBackToHost() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "host.example.com").
		Return(activeTenant("host.example.com"), nil).Once()

	tenant, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{
		Referrer: "/relative/only",
		Host:     "host.example.com:443",
		Embedded: true,
	})

	suite.Require().NoError(err)
	suite.Equal("host.example.com", tenant.DomainKey)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_UnknownDomainFailsClosed() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "nobody.example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{Host: "nobody.example.com"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrTenantUnavailable)
	// Not found is definitive, no retry.
	suite.mockTenantRepo.AssertNumberOfCalls(suite.T(), "FindTenantByDomainKey", 1)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_InactiveTenantFailsClosed() {
	ctx := context.Background()
	disabled := activeTenant("off.example.com")
	disabled.Active = false
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "off.example.com").
		Return(disabled, nil).Once()

	_, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{Host: "off.example.com"})

	suite.ErrorIs(err, apperrors.ErrTenantUnavailable)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_TransportErrorRetriesThenFailsClosed() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "flaky.example.com").
		Return(nil, errors.New("connection reset")).Twice()

	_, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{Host: "flaky.example.com"})

	suite.ErrorIs(err, apperrors.ErrTenantUnavailable)
	suite.mockTenantRepo.AssertNumberOfCalls(suite.T(), "FindTenantByDomainKey", 2)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_BypassDisabledIsIgnored() {
	ctx := context.Background()
	suite.mockTenantRepo.On("FindTenantByDomainKey", ctx, "host.example.com").
		Return(activeTenant("host.example.com"), nil).Once()

	tenant, err := suite.service.ResolveTenant(ctx, dto.ResolveTenantRequest{
		Host:   "host.example.com",
		Bypass: true,
	})

	suite.Require().NoError(err)
	suite.False(tenant.AllowAll)
}

func (suite *TenantServiceTestSuite) TestResolveTenant_BypassEnabledShortCircuits() {
	svc := services.NewTenantService(suite.mockTenantRepo, suite.mockCarReader, true, nil)

	tenant, err := svc.ResolveTenant(context.Background(), dto.ResolveTenantRequest{
		Host:   "host.example.com",
		Bypass: true,
	})

	suite.Require().NoError(err)
	suite.True(tenant.AllowAll)
	suite.True(tenant.Active)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "FindTenantByDomainKey", mock.Anything, mock.Anything)
}

// --- Catalog transform ---

func rawCatalog() []domain.Car {
	return []domain.Car{
		{CarID: "c1", Name: "Sedan", Category: domain.CategoryTransfer, BasePrice: decimal.NewFromInt(299), CurrencyCode: "USD", Active: true},
		{CarID: "c2", Name: "SUV", Category: domain.CategoryTransfer, BasePrice: decimal.NewFromInt(150), CurrencyCode: "USD", Active: true},
		{CarID: "c3", Name: "Van", Category: domain.CategoryTransfer, BasePrice: decimal.NewFromInt(80), CurrencyCode: "USD", Active: true},
	}
}

func (suite *TenantServiceTestSuite) TestEffectiveCatalog_OverridesAndVisibility() {
	tenant := activeTenant("a.example.com")
	tenant.Overrides = []domain.CarOverride{
		{CarID: "c1", PriceOverride: decimal.NewFromInt(199), Visible: true},
		{CarID: "c2", Visible: false},
	}

	got := suite.service.EffectiveCatalog(tenant, rawCatalog())

	suite.Require().Len(got, 2)
	suite.Equal("c1", got[0].CarID)
	suite.True(got[0].BasePrice.Equal(decimal.NewFromInt(199)))
	suite.Equal("c3", got[1].CarID)
	suite.True(got[1].BasePrice.Equal(decimal.NewFromInt(80)))
}

func (suite *TenantServiceTestSuite) TestEffectiveCatalog_ZeroPriceOverrideKeepsBase() {
	tenant := activeTenant("a.example.com")
	tenant.Overrides = []domain.CarOverride{
		{CarID: "c1", PriceOverride: decimal.Zero, Visible: true},
	}

	got := suite.service.EffectiveCatalog(tenant, rawCatalog())

	suite.Require().Len(got, 3)
	suite.True(got[0].BasePrice.Equal(decimal.NewFromInt(299)))
}

func (suite *TenantServiceTestSuite) TestEffectiveCatalog_InactiveTenantIsEmpty() {
	tenant := activeTenant("a.example.com")
	tenant.Active = false
	tenant.Overrides = []domain.CarOverride{
		{CarID: "c1", PriceOverride: decimal.NewFromInt(1), Visible: true},
	}

	suite.Empty(suite.service.EffectiveCatalog(tenant, rawCatalog()))
	suite.Empty(suite.service.EffectiveCatalog(nil, rawCatalog()))
}

func (suite *TenantServiceTestSuite) TestEffectiveCatalog_InactiveCarsDropped() {
	tenant := activeTenant("a.example.com")
	cars := rawCatalog()
	cars[1].Active = false

	got := suite.service.EffectiveCatalog(tenant, cars)

	suite.Require().Len(got, 2)
	suite.Equal("c1", got[0].CarID)
	suite.Equal("c3", got[1].CarID)
}

func (suite *TenantServiceTestSuite) TestEffectiveCatalog_AllowAllKeepsEverything() {
	tenant := domain.BypassTenant()

	got := suite.service.EffectiveCatalog(tenant, rawCatalog())

	suite.Len(got, 3)
}

func (suite *TenantServiceTestSuite) TestGetEffectiveCatalog_InvalidCategory() {
	_, err := suite.service.GetEffectiveCatalog(context.Background(), activeTenant("a.example.com"), "motorbike")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCarReader.AssertNotCalled(suite.T(), "ListCars", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestGetEffectiveCatalog_AppliesTransform() {
	ctx := context.Background()
	tenant := activeTenant("a.example.com")
	tenant.Overrides = []domain.CarOverride{{CarID: "c2", Visible: false}}

	suite.mockCarReader.On("ListCars", ctx, portsrepo.CarListFilter{Category: domain.CategoryTransfer, ActiveOnly: true}).
		Return(rawCatalog(), "", nil).Once()

	got, err := suite.service.GetEffectiveCatalog(ctx, tenant, domain.CategoryTransfer)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockCarReader.AssertExpectations(suite.T())
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}
