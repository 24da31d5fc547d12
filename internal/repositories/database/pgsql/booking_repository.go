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

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for bookings.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

var FULL_BOOKING_SELECT_QUERY = `
SELECT
	b.booking_id, b.tenant_id, b.car_id, b.category,
	b.customer_name, b.customer_email, b.customer_phone,
	b.license_number, b.license_country,
	b.pickup_location, b.dropoff_location, b.pickup_time, b.dropoff_time,
	b.total_price, b.currency_code, b.status, b.payment_order_id, b.payment_ref,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by, b.version
FROM bookings b
`

func (r *PgxBookingRepository) getBookings(ctx context.Context, filterQuery string, args ...any) ([]models.Booking, error) {
	query := FULL_BOOKING_SELECT_QUERY + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bookings", err)
	}
	defer rows.Close()
	bookings, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Booking])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.Booking{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect booking rows", err)
	}
	return bookings, nil
}

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	bookings, err := r.getBookings(ctx, `WHERE b.booking_id = $1`, bookingID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, apperrors.ErrNotFound
	}
	booking := mapping.ToDomainBooking(bookings[0])
	return &booking, nil
}

func (r *PgxBookingRepository) ListBookingsByTenant(ctx context.Context, tenantID string, limit int) ([]domain.Booking, error) {
	query := `WHERE b.tenant_id = $1 ORDER BY b.created_at DESC`
	args := []any{tenantID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	bookings, err := r.getBookings(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainBookingSlice(bookings), nil
}

func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	model := mapping.ToModelBooking(booking)
	query := `
		INSERT INTO bookings (
			booking_id, tenant_id, car_id, category,
			customer_name, customer_email, customer_phone,
			license_number, license_country,
			pickup_location, dropoff_location, pickup_time, dropoff_time,
			total_price, currency_code, status, payment_order_id, payment_ref,
			created_at, created_by, last_updated_at, last_updated_by, version
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23
		);
	`
	_, err := r.Pool.Exec(ctx, query,
		model.BookingID,
		model.TenantID,
		model.CarID,
		model.Category,
		model.CustomerName,
		model.CustomerEmail,
		model.CustomerPhone,
		model.LicenseNumber,
		model.LicenseCountry,
		model.PickupLocation,
		model.DropoffLocation,
		model.PickupTime,
		model.DropoffTime,
		model.TotalPrice,
		model.CurrencyCode,
		model.Status,
		model.PaymentOrderID,
		model.PaymentRef,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
		1,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return apperrors.NewAppError(409, "booking "+booking.BookingID+" already exists", apperrors.ErrDuplicate)
			}
			if pgErr.Code == "23503" {
				return apperrors.NewAppError(400, "booking references an unknown tenant or car", apperrors.ErrValidation)
			}
		}
		return apperrors.NewAppError(500, "failed to save booking "+booking.BookingID, err)
	}
	return nil
}

func (r *PgxBookingRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, paymentRef string, updaterUserID string) error {
	query := `
		UPDATE bookings
		SET status = $1, payment_ref = $2,
			last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE booking_id = $5;
	`
	result, err := r.Pool.Exec(ctx, query, string(status), paymentRef, time.Now(), updaterUserID, bookingID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update booking "+bookingID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
