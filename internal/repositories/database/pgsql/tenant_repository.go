package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	"github.com/carvoy/carvoy_backend/internal/models"
	"github.com/carvoy/carvoy_backend/internal/utils/mapping"
)

type PgxTenantRepository struct {
	BaseRepository
}

// newPgxTenantRepository creates a new repository for tenant configuration.
func newPgxTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryWithTx {
	return &PgxTenantRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TenantRepositoryWithTx = (*PgxTenantRepository)(nil)

var FULL_TENANT_SELECT_QUERY = `
SELECT
	t.tenant_id, t.domain_key, t.name, COALESCE(t.theme_id, '') AS theme_id, t.active,
	t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, t.version
FROM tenants t
`

func (r *PgxTenantRepository) getTenants(ctx context.Context, filterQuery string, args ...any) ([]models.Tenant, error) {
	query := FULL_TENANT_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tenants", err)
	}
	defer rows.Close()
	tenants, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Tenant])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.Tenant{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect tenant rows", err)
	}
	return tenants, nil
}

func (r *PgxTenantRepository) getOverrides(ctx context.Context, tenantID string) ([]models.TenantCarOverride, error) {
	query := `
		SELECT tenant_id, car_id, price_override, visible
		FROM tenant_car_overrides
		WHERE tenant_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query overrides for tenant "+tenantID, err)
	}
	defer rows.Close()
	overrides, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.TenantCarOverride])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.TenantCarOverride{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect override rows", err)
	}
	return overrides, nil
}

func (r *PgxTenantRepository) FindTenantByDomainKey(ctx context.Context, domainKey string) (*domain.Tenant, error) {
	tenants, err := r.getTenants(ctx, `WHERE t.domain_key = $1`, domainKey)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, apperrors.ErrNotFound
	}
	overrides, err := r.getOverrides(ctx, tenants[0].TenantID)
	if err != nil {
		return nil, err
	}
	tenant := mapping.ToDomainTenant(tenants[0], overrides)
	return &tenant, nil
}

func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenants, err := r.getTenants(ctx, `WHERE t.tenant_id = $1`, tenantID)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		return nil, apperrors.ErrNotFound
	}
	overrides, err := r.getOverrides(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	tenant := mapping.ToDomainTenant(tenants[0], overrides)
	return &tenant, nil
}

func (r *PgxTenantRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := r.getTenants(ctx, `ORDER BY t.domain_key`)
	if err != nil {
		return nil, err
	}
	result := make([]domain.Tenant, 0, len(tenants))
	for _, m := range tenants {
		overrides, err := r.getOverrides(ctx, m.TenantID)
		if err != nil {
			return nil, err
		}
		result = append(result, mapping.ToDomainTenant(m, overrides))
	}
	return result, nil
}

func (r *PgxTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	model := mapping.ToModelTenant(tenant)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO tenants (
			tenant_id, domain_key, name, theme_id, active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		model.TenantID,
		model.DomainKey,
		model.Name,
		model.ThemeID,
		model.Active,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		1,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return apperrors.NewAppError(409, "domain key "+tenant.DomainKey+" is already taken", apperrors.ErrDuplicate)
			case "23503": // foreign_key_violation
				return apperrors.NewAppError(400, "theme "+tenant.ThemeID+" does not exist", apperrors.ErrValidation)
			}
		}
		return apperrors.NewAppError(500, "failed to save tenant "+tenant.TenantID, err)
	}

	if err := r.insertOverrides(ctx, tx, tenant); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTenantRepository) UpdateTenant(ctx context.Context, tenant domain.Tenant) error {
	model := mapping.ToModelTenant(tenant)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE tenants
		SET domain_key = $1, name = $2, theme_id = NULLIF($3, ''), active = $4,
			last_updated_at = $5, last_updated_by = $6, version = version + 1
		WHERE tenant_id = $7;
	`
	result, err := tx.Exec(ctx, query,
		model.DomainKey,
		model.Name,
		model.ThemeID,
		model.Active,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		model.TenantID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return apperrors.NewAppError(409, "domain key "+tenant.DomainKey+" is already taken", apperrors.ErrDuplicate)
			case "23503":
				return apperrors.NewAppError(400, "theme "+tenant.ThemeID+" does not exist", apperrors.ErrValidation)
			}
		}
		return apperrors.NewAppError(500, "failed to update tenant "+tenant.TenantID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	// Override tuples are replaced wholesale: the admin UI always submits the
	// full set.
	if _, err := tx.Exec(ctx, `DELETE FROM tenant_car_overrides WHERE tenant_id = $1;`, tenant.TenantID); err != nil {
		return apperrors.NewAppError(500, "failed to clear overrides for tenant "+tenant.TenantID, err)
	}
	if err := r.insertOverrides(ctx, tx, tenant); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxTenantRepository) insertOverrides(ctx context.Context, tx pgx.Tx, tenant domain.Tenant) error {
	query := `
		INSERT INTO tenant_car_overrides (tenant_id, car_id, price_override, visible)
		VALUES ($1, $2, $3, $4);
	`
	for _, row := range mapping.ToModelOverrides(tenant) {
		if _, err := tx.Exec(ctx, query, row.TenantID, row.CarID, row.PriceOverride, row.Visible); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
				return apperrors.NewAppError(400, "car "+row.CarID+" does not exist", apperrors.ErrValidation)
			}
			return apperrors.NewAppError(500, "failed to save override for car "+row.CarID, err)
		}
	}
	return nil
}

func (r *PgxTenantRepository) DeleteTenant(ctx context.Context, tenantID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM tenant_car_overrides WHERE tenant_id = $1;`, tenantID); err != nil {
		return apperrors.NewAppError(500, "failed to delete overrides for tenant "+tenantID, err)
	}
	result, err := tx.Exec(ctx, `DELETE FROM tenants WHERE tenant_id = $1;`, tenantID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewAppError(409, "tenant "+tenantID+" has bookings", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to delete tenant "+tenantID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}
