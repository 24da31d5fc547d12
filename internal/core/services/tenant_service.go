package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
	"github.com/carvoy/carvoy_backend/internal/utils"
)

// lookupAttempts bounds the config-store retry. Repeated "unavailable" pages
// are costly, one quick retry is enough.
const lookupAttempts = 2

const lookupRetryDelay = 100 * time.Millisecond

// TenantService implements the domain-resolution pipeline plus the admin CRUD
// surface for tenants.
type TenantService struct {
	tenantRepo    portsrepo.TenantRepositoryFacade
	carRepo       portsrepo.CarReader
	bypassEnabled bool
	logger        *slog.Logger
}

// NewTenantService creates a new TenantService. bypassEnabled gates the
// staging-only "all cars" path; it should be false in production.
func NewTenantService(tenantRepo portsrepo.TenantRepositoryFacade, carRepo portsrepo.CarReader, bypassEnabled bool, logger *slog.Logger) *TenantService {
	if logger == nil {
		logger = slog.Default()
	}
	return &TenantService{
		tenantRepo:    tenantRepo,
		carRepo:       carRepo,
		bypassEnabled: bypassEnabled,
		logger:        logger,
	}
}

var _ portssvc.TenantSvcFacade = (*TenantService)(nil)

// ResolveTenant determines the effective tenant for a request.
//
// Key determination is input normalization with graceful degradation: an
// explicit override wins, then the referrer's hostname when the request is
// embedded in a parent frame, then the request host. The referrer is a
// convenience default only and never an access-control boundary.
//
// The activity gate fails closed: unknown domain, inactive tenant and config
// store errors all resolve to ErrTenantUnavailable. A broken config service
// must not leak a default catalog to an unrecognized domain.
func (s *TenantService) ResolveTenant(ctx context.Context, in dto.ResolveTenantRequest) (*domain.Tenant, error) {
	if in.Bypass && s.bypassEnabled {
		// Staging-only escape hatch. The WARN plus bypass attribute keeps it
		// distinguishable from production resolutions in telemetry.
		s.logger.WarnContext(ctx, "Tenant resolution bypassed, serving unrestricted catalog",
			slog.Bool("bypass", true),
			slog.String("host", in.Host),
		)
		return domain.BypassTenant(), nil
	}

	key := s.determineKey(ctx, in)
	if key == "" {
		return nil, fmt.Errorf("%w: no usable domain key in request", apperrors.ErrTenantUnavailable)
	}

	tenant, err := s.lookupTenant(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Tenant lookup failed, failing closed",
				slog.String("domain_key", key),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrTenantUnavailable, key)
	}

	if !tenant.Active {
		s.logger.WarnContext(ctx, "Tenant is disabled", slog.String("domain_key", key))
		return nil, fmt.Errorf("%w: %s", apperrors.ErrTenantUnavailable, key)
	}

	return tenant, nil
}

// determineKey picks and normalizes the tenant key from the request context.
// Unparseable referrers degrade to the request host, never error.
func (s *TenantService) determineKey(ctx context.Context, in dto.ResolveTenantRequest) string {
	if key := utils.NormalizeDomainKey(in.OverrideKey); key != "" {
		return key
	}

	if in.Embedded && in.Referrer != "" {
		host, err := utils.HostFromReferrer(in.Referrer)
		if err == nil {
			return host
		}
		s.logger.DebugContext(ctx, "Referrer unusable, falling back to request host",
			slog.String("referrer", in.Referrer),
			slog.String("error", err.Error()),
		)
	}

	return utils.NormalizeDomainKey(in.Host)
}

func (s *TenantService) lookupTenant(ctx context.Context, key string) (*domain.Tenant, error) {
	var lastErr error
	for attempt := 0; attempt < lookupAttempts; attempt++ {
		tenant, err := s.tenantRepo.FindTenantByDomainKey(ctx, key)
		if err == nil {
			return tenant, nil
		}
		lastErr = err
		if errors.Is(err, apperrors.ErrNotFound) {
			// Definitive answer, retrying will not help.
			return nil, err
		}
		if attempt+1 < lookupAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(lookupRetryDelay):
			}
		}
	}
	return nil, lastErr
}

// EffectiveCatalog applies the tenant's visibility and price overrides to a
// raw active-only car list. Entries with no override tuple default to visible
// at the base price. Pure, no I/O.
func (s *TenantService) EffectiveCatalog(tenant *domain.Tenant, cars []domain.Car) []domain.Car {
	if tenant == nil || !tenant.Active {
		// Isolation invariant: an inactive tenant never surfaces a catalog.
		return []domain.Car{}
	}

	out := make([]domain.Car, 0, len(cars))
	for _, car := range cars {
		if !car.Active {
			continue
		}
		if tenant.AllowAll {
			out = append(out, car)
			continue
		}
		override, ok := tenant.OverrideFor(car.CarID)
		if !ok {
			out = append(out, car)
			continue
		}
		if !override.Visible {
			continue
		}
		if override.PriceOverride.GreaterThan(decimal.Zero) {
			car.BasePrice = override.PriceOverride
		}
		out = append(out, car)
	}
	return out
}

// GetEffectiveCatalog loads the active catalog for a category and applies the
// tenant transform.
func (s *TenantService) GetEffectiveCatalog(ctx context.Context, tenant *domain.Tenant, category domain.CarCategory) ([]domain.Car, error) {
	filter := portsrepo.CarListFilter{ActiveOnly: true}
	if category != "" {
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
		}
		filter.Category = category
	}

	cars, _, err := s.carRepo.ListCars(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	return s.EffectiveCatalog(tenant, cars), nil
}

// CreateTenant handles the creation of a new tenant.
func (s *TenantService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error) {
	key := utils.NormalizeDomainKey(req.DomainKey)
	if key == "" {
		return nil, fmt.Errorf("%w: domain key is required", apperrors.ErrValidation)
	}

	if existing, err := s.tenantRepo.FindTenantByDomainKey(ctx, key); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: domain %s is already configured", apperrors.ErrDuplicate, key)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing tenant: %w", err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	tenant := domain.Tenant{
		TenantID:  uuid.NewString(),
		DomainKey: key,
		Name:      req.Name,
		ThemeID:   req.ThemeID,
		Overrides: dto.ToDomainOverrides(req.Overrides),
		Active:    active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.tenantRepo.SaveTenant(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return &tenant, nil
}

// UpdateTenant replaces a tenant's mutable fields and override set.
func (s *TenantService) UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, updaterUserID string) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if req.DomainKey != nil {
		key := utils.NormalizeDomainKey(*req.DomainKey)
		if key == "" {
			return nil, fmt.Errorf("%w: domain key cannot be empty", apperrors.ErrValidation)
		}
		tenant.DomainKey = key
	}
	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.ThemeID != nil {
		tenant.ThemeID = *req.ThemeID
	}
	if req.Overrides != nil {
		tenant.Overrides = dto.ToDomainOverrides(req.Overrides)
	}
	if req.Active != nil {
		tenant.Active = *req.Active
	}

	tenant.LastUpdatedAt = time.Now()
	tenant.LastUpdatedBy = updaterUserID

	if err := s.tenantRepo.UpdateTenant(ctx, *tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant %s: %w", tenantID, err)
	}

	return tenant, nil
}

// DeleteTenant removes a tenant and its overrides.
func (s *TenantService) DeleteTenant(ctx context.Context, tenantID string) error {
	return s.tenantRepo.DeleteTenant(ctx, tenantID)
}

// GetTenantByID retrieves a tenant by its ID.
func (s *TenantService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByID(ctx, tenantID)
}

// ListTenants retrieves all tenants.
func (s *TenantService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenantRepo.ListTenants(ctx)
}
