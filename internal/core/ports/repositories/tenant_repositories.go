package repositories

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// TenantReader defines read operations for tenant configuration
type TenantReader interface {
	// FindTenantByDomainKey retrieves the tenant configured for a bare hostname.
	// Returns apperrors.ErrNotFound when no tenant owns the domain.
	FindTenantByDomainKey(ctx context.Context, domainKey string) (*domain.Tenant, error)

	// FindTenantByID retrieves a tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// ListTenants retrieves all tenants (admin surface).
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant configuration
type TenantWriter interface {
	// SaveTenant persists a new tenant together with its car overrides.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenant replaces a tenant's mutable fields and override set.
	UpdateTenant(ctx context.Context, tenant domain.Tenant) error

	// DeleteTenant removes a tenant and its overrides.
	DeleteTenant(ctx context.Context, tenantID string) error
}

// TenantRepositoryFacade combines all tenant-related repository interfaces
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
}

// TenantRepositoryWithTx extends TenantRepositoryFacade with transaction capabilities
type TenantRepositoryWithTx interface {
	TenantRepositoryFacade
	TransactionManager
}
