package services

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// TenantResolverSvc is the domain-resolution side of the tenant service: the
// per-request pipeline that turns request context into a tenant and a
// tenant-effective catalog.
type TenantResolverSvc interface {
	// ResolveTenant determines the effective tenant for a request. It fails
	// closed with apperrors.ErrTenantUnavailable when the domain is unknown,
	// inactive or the config store cannot be reached.
	ResolveTenant(ctx context.Context, in dto.ResolveTenantRequest) (*domain.Tenant, error)

	// EffectiveCatalog applies the tenant's visibility and price overrides to a
	// raw active-only car list. Pure, no I/O.
	EffectiveCatalog(tenant *domain.Tenant, cars []domain.Car) []domain.Car

	// GetEffectiveCatalog loads the active catalog for a category and applies
	// the tenant transform.
	GetEffectiveCatalog(ctx context.Context, tenant *domain.Tenant, category domain.CarCategory) ([]domain.Car, error)
}

// TenantAdminSvc defines the back-office CRUD operations on tenants.
type TenantAdminSvc interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorUserID string) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID string, req dto.UpdateTenantRequest, updaterUserID string) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID string) error
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantSvcFacade combines all tenant-related service interfaces
type TenantSvcFacade interface {
	TenantResolverSvc
	TenantAdminSvc
}
