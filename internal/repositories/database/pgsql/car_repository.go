package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	"github.com/carvoy/carvoy_backend/internal/models"
	"github.com/carvoy/carvoy_backend/internal/utils/mapping"
	"github.com/carvoy/carvoy_backend/internal/utils/pagination"
)

type PgxCarRepository struct {
	BaseRepository
}

// newPgxCarRepository creates a new repository for the car catalog.
func newPgxCarRepository(pool *pgxpool.Pool) portsrepo.CarRepositoryFacade {
	return &PgxCarRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CarRepositoryFacade = (*PgxCarRepository)(nil)

var FULL_CAR_SELECT_QUERY = `
SELECT
	c.car_id, c.name, c.category, c.seats, c.luggage_count, c.base_price,
	c.currency_code, c.image_url, c.active,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by, c.version
FROM cars c
`

func (r *PgxCarRepository) getCars(ctx context.Context, filterQuery string, args ...any) ([]models.Car, error) {
	query := FULL_CAR_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cars", err)
	}
	defer rows.Close()
	cars, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Car])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.Car{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect car rows", err)
	}
	return cars, nil
}

func (r *PgxCarRepository) FindCarByID(ctx context.Context, carID string) (*domain.Car, error) {
	cars, err := r.getCars(ctx, `WHERE c.car_id = $1`, carID)
	if err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return nil, apperrors.ErrNotFound
	}
	car := mapping.ToDomainCar(cars[0])
	return &car, nil
}

// ListCars retrieves catalog entries matching the filter. When a limit is set
// the listing is keyset-paginated on (created_at, car_id) and the second
// return value carries the token for the next page.
func (r *PgxCarRepository) ListCars(ctx context.Context, filter portsrepo.CarListFilter) ([]domain.Car, string, error) {
	var (
		clauses []string
		args    []any
	)
	argn := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		clauses = append(clauses, "c.category = "+argn(string(filter.Category)))
	}
	if filter.ActiveOnly {
		clauses = append(clauses, "c.active = true")
	}
	if filter.AfterToken != "" {
		afterTime, afterID, err := pagination.DecodeToken(filter.AfterToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		t := argn(afterTime)
		id := argn(afterID)
		clauses = append(clauses, fmt.Sprintf("(c.created_at, c.car_id) > (%s, %s)", t, id))
	}

	query := ""
	for i, clause := range clauses {
		if i == 0 {
			query += "WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY c.created_at, c.car_id"

	fetchOneExtra := 0
	if filter.Limit > 0 {
		fetchOneExtra = 1
		query += " LIMIT " + argn(filter.Limit+fetchOneExtra)
	}

	cars, err := r.getCars(ctx, query, args...)
	if err != nil {
		return nil, "", err
	}

	nextToken := ""
	if filter.Limit > 0 && len(cars) > filter.Limit {
		cars = cars[:filter.Limit]
		last := cars[len(cars)-1]
		nextToken = pagination.EncodeToken(last.CreatedAt, last.CarID)
	}

	return mapping.ToDomainCarSlice(cars), nextToken, nil
}

func (r *PgxCarRepository) SaveCar(ctx context.Context, car domain.Car) error {
	model := mapping.ToModelCar(car)
	query := `
		INSERT INTO cars (
			car_id, name, category, seats, luggage_count, base_price,
			currency_code, image_url, active,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.CarID,
		model.Name,
		model.Category,
		model.Seats,
		model.LuggageCount,
		model.BasePrice,
		model.CurrencyCode,
		model.ImageURL,
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
			return apperrors.NewAppError(409, "car "+car.CarID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to save car "+car.CarID, err)
	}
	return nil
}

func (r *PgxCarRepository) UpdateCar(ctx context.Context, car domain.Car) error {
	model := mapping.ToModelCar(car)
	query := `
		UPDATE cars
		SET name = $1, category = $2, seats = $3, luggage_count = $4,
			base_price = $5, currency_code = $6, image_url = $7, active = $8,
			last_updated_at = $9, last_updated_by = $10, version = version + 1
		WHERE car_id = $11;
	`
	result, err := r.Pool.Exec(ctx, query,
		model.Name,
		model.Category,
		model.Seats,
		model.LuggageCount,
		model.BasePrice,
		model.CurrencyCode,
		model.ImageURL,
		model.Active,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		model.CarID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update car "+car.CarID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCarRepository) DeleteCar(ctx context.Context, carID string) error {
	result, err := r.Pool.Exec(ctx, `DELETE FROM cars WHERE car_id = $1;`, carID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewAppError(409, "car "+carID+" is referenced by tenant overrides or bookings", apperrors.ErrValidation)
		}
		return apperrors.NewAppError(500, "failed to delete car "+carID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
