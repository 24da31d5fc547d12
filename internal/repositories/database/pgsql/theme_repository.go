package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	"github.com/carvoy/carvoy_backend/internal/models"
	"github.com/carvoy/carvoy_backend/internal/utils/mapping"
)

type PgxThemeRepository struct {
	BaseRepository
}

// newPgxThemeRepository creates a new repository for theme data.
func newPgxThemeRepository(pool *pgxpool.Pool) portsrepo.ThemeRepositoryWithTx {
	return &PgxThemeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ThemeRepositoryWithTx = (*PgxThemeRepository)(nil)

var FULL_THEME_SELECT_QUERY = `
SELECT
	th.theme_id, th.name, th.primary_color, th.secondary_color, th.background_color,
	th.accent_color, th.success_color, th.warning_color, th.text_color,
	th.border_radius, th.font_family, th.active,
	th.created_at, th.created_by, th.last_updated_at, th.last_updated_by, th.version
FROM themes th
`

func (r *PgxThemeRepository) getThemes(ctx context.Context, filterQuery string, args ...any) ([]models.Theme, error) {
	query := FULL_THEME_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query themes", err)
	}
	defer rows.Close()
	themes, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Theme])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.Theme{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect theme rows", err)
	}
	return themes, nil
}

func (r *PgxThemeRepository) FindThemeByID(ctx context.Context, themeID string) (*domain.Theme, error) {
	themes, err := r.getThemes(ctx, `WHERE th.theme_id = $1`, themeID)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, apperrors.ErrNotFound
	}
	theme := mapping.ToDomainTheme(themes[0])
	return &theme, nil
}

func (r *PgxThemeRepository) FindActiveTheme(ctx context.Context) (*domain.Theme, error) {
	themes, err := r.getThemes(ctx, `WHERE th.active = true LIMIT 1`)
	if err != nil {
		return nil, err
	}
	if len(themes) == 0 {
		return nil, apperrors.ErrNotFound
	}
	theme := mapping.ToDomainTheme(themes[0])
	return &theme, nil
}

func (r *PgxThemeRepository) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	themes, err := r.getThemes(ctx, `ORDER BY th.name`)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainThemeSlice(themes), nil
}

func (r *PgxThemeRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	model := mapping.ToModelTheme(theme)
	query := `
		INSERT INTO themes (
			theme_id, name, primary_color, secondary_color, background_color,
			accent_color, success_color, warning_color, text_color,
			border_radius, font_family, active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.ThemeID,
		model.Name,
		model.PrimaryColor,
		model.SecondaryColor,
		model.BackgroundColor,
		model.AccentColor,
		model.SuccessColor,
		model.WarningColor,
		model.TextColor,
		model.BorderRadius,
		model.FontFamily,
		model.Active,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		1,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "theme "+theme.ThemeID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save theme "+theme.ThemeID, err)
	}
	return nil
}

func (r *PgxThemeRepository) UpdateTheme(ctx context.Context, theme domain.Theme) error {
	model := mapping.ToModelTheme(theme)
	query := `
		UPDATE themes
		SET name = $1, primary_color = $2, secondary_color = $3, background_color = $4,
			accent_color = $5, success_color = $6, warning_color = $7, text_color = $8,
			border_radius = $9, font_family = $10,
			last_updated_at = $11, last_updated_by = $12, version = version + 1
		WHERE theme_id = $13;
	`
	result, err := r.Pool.Exec(ctx, query,
		model.Name,
		model.PrimaryColor,
		model.SecondaryColor,
		model.BackgroundColor,
		model.AccentColor,
		model.SuccessColor,
		model.WarningColor,
		model.TextColor,
		model.BorderRadius,
		model.FontFamily,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		model.ThemeID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update theme "+theme.ThemeID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ActivateTheme makes the given theme the single active one. Deactivation of
// the previous theme and activation of the new one happen in one transaction
// so there is never more or less than one active theme.
func (r *PgxThemeRepository) ActivateTheme(ctx context.Context, themeID string, updaterUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	now := time.Now()
	deactivate := `
		UPDATE themes
		SET active = false, last_updated_at = $1, last_updated_by = $2, version = version + 1
		WHERE active = true AND theme_id != $3;
	`
	if _, err := tx.Exec(ctx, deactivate, now, updaterUserID, themeID); err != nil {
		return apperrors.NewAppError(500, "failed to deactivate current theme", err)
	}

	activate := `
		UPDATE themes
		SET active = true, last_updated_at = $1, last_updated_by = $2, version = version + 1
		WHERE theme_id = $3;
	`
	result, err := tx.Exec(ctx, activate, now, updaterUserID, themeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to activate theme "+themeID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}

func (r *PgxThemeRepository) DeleteTheme(ctx context.Context, themeID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM themes WHERE theme_id = $1;`, themeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewAppError(409, "theme "+themeID+" is assigned to a tenant", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to delete theme "+themeID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
