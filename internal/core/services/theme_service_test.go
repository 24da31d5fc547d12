package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/core/services"
)

// --- Mock ThemeRepository ---
type MockThemeRepository struct {
	mock.Mock
}

func (m *MockThemeRepository) FindThemeByID(ctx context.Context, themeID string) (*domain.Theme, error) {
	args := m.Called(ctx, themeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

func (m *MockThemeRepository) FindActiveTheme(ctx context.Context) (*domain.Theme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

func (m *MockThemeRepository) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Theme), args.Error(1)
}

func (m *MockThemeRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockThemeRepository) UpdateTheme(ctx context.Context, theme domain.Theme) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockThemeRepository) ActivateTheme(ctx context.Context, themeID string, updaterUserID string) error {
	args := m.Called(ctx, themeID, updaterUserID)
	return args.Error(0)
}

func (m *MockThemeRepository) DeleteTheme(ctx context.Context, themeID string) error {
	args := m.Called(ctx, themeID)
	return args.Error(0)
}

// --- Test Suite ---
type ThemeServiceTestSuite struct {
	suite.Suite
	mockThemeRepo *MockThemeRepository
	service       *services.ThemeService
}

func (suite *ThemeServiceTestSuite) SetupTest() {
	suite.mockThemeRepo = new(MockThemeRepository)
	suite.service = services.NewThemeService(suite.mockThemeRepo, nil)
}

func (suite *ThemeServiceTestSuite) TestResolveTheme_TenantAssignedWins() {
	ctx := context.Background()
	assigned := &domain.Theme{ThemeID: "th-1", Name: "Tenant Theme"}
	suite.mockThemeRepo.On("FindThemeByID", ctx, "th-1").Return(assigned, nil).Once()

	theme := suite.service.ResolveTheme(ctx, &domain.Tenant{ThemeID: "th-1", Active: true})

	suite.Equal("th-1", theme.ThemeID)
	suite.mockThemeRepo.AssertNotCalled(suite.T(), "FindActiveTheme", mock.Anything)
}

func (suite *ThemeServiceTestSuite) TestResolveTheme_AssignedMissingFallsToActive() {
	ctx := context.Background()
	active := &domain.Theme{ThemeID: "th-2", Name: "Global Active", Active: true}
	suite.mockThemeRepo.On("FindThemeByID", ctx, "gone").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockThemeRepo.On("FindActiveTheme", ctx).Return(active, nil).Once()

	theme := suite.service.ResolveTheme(ctx, &domain.Tenant{ThemeID: "gone", Active: true})

	suite.Equal("th-2", theme.ThemeID)
}

func (suite *ThemeServiceTestSuite) TestResolveTheme_NoAssignmentUsesActive() {
	ctx := context.Background()
	active := &domain.Theme{ThemeID: "th-2", Active: true}
	suite.mockThemeRepo.On("FindActiveTheme", ctx).Return(active, nil).Once()

	theme := suite.service.ResolveTheme(ctx, &domain.Tenant{Active: true})

	suite.Equal("th-2", theme.ThemeID)
	suite.mockThemeRepo.AssertNotCalled(suite.T(), "FindThemeByID", mock.Anything, mock.Anything)
}

func (suite *ThemeServiceTestSuite) TestResolveTheme_EverythingFailsUsesDefault() {
	ctx := context.Background()
	suite.mockThemeRepo.On("FindThemeByID", ctx, "th-1").Return(nil, errors.New("store down")).Once()
	suite.mockThemeRepo.On("FindActiveTheme", ctx).Return(nil, errors.New("store down")).Once()

	theme := suite.service.ResolveTheme(ctx, &domain.Tenant{ThemeID: "th-1", Active: true})

	suite.Require().NotNil(theme)
	suite.Equal("default", theme.ThemeID)
	suite.NotEmpty(theme.Tokens()["primary"])
}

func (suite *ThemeServiceTestSuite) TestResolveTheme_NilTenantStillResolves() {
	ctx := context.Background()
	suite.mockThemeRepo.On("FindActiveTheme", ctx).Return(nil, apperrors.ErrNotFound).Once()

	theme := suite.service.ResolveTheme(ctx, nil)

	suite.Require().NotNil(theme)
	suite.Equal("default", theme.ThemeID)
}

func (suite *ThemeServiceTestSuite) TestActivateTheme_UnknownTheme() {
	ctx := context.Background()
	suite.mockThemeRepo.On("FindThemeByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ActivateTheme(ctx, "nope", "admin-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockThemeRepo.AssertNotCalled(suite.T(), "ActivateTheme", mock.Anything, mock.Anything, mock.Anything)
}

func TestThemeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ThemeServiceTestSuite))
}
