package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"created_at",
	"name",
	"phone",
	"slot_date",
	"start_time",
	"end_time",
	"utr",
	"payment_image",
	"amount",
	"payment_type",
	"balance_amount",
	"coupon_code",
	"status",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование и заполняет ID.
// Повторная оплата того же интервала или повторный UTR возвращают ErrDuplicateBooking.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	query, args, err := buildInsertQuery(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt time.Time
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt

	return booking, nil
}

// GetByDate возвращает бронирования на дату, отсортированные по времени начала
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]domain.Booking, error) {
	query, args, err := buildSelectByDateQuery(date)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func buildInsertQuery(booking *domain.Booking) (string, []interface{}, error) {
	return psqlbuilder.Insert("bookings").
		Columns(
			"created_at",
			"name",
			"phone",
			"slot_date",
			"start_time",
			"end_time",
			"utr",
			"payment_image",
			"amount",
			"payment_type",
			"balance_amount",
			"coupon_code",
			"status",
		).
		Values(
			booking.CreatedAt,
			booking.Name,
			booking.Phone,
			booking.SlotDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.UTR,
			booking.PaymentImage,
			booking.Amount,
			booking.PaymentType,
			booking.BalanceAmount,
			booking.CouponCode,
			booking.Status,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildSelectByDateQuery(date time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"slot_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		err := rows.Scan(
			&b.ID,
			&b.CreatedAt,
			&b.Name,
			&b.Phone,
			&b.SlotDate,
			&b.StartTime,
			&b.EndTime,
			&b.UTR,
			&b.PaymentImage,
			&b.Amount,
			&b.PaymentType,
			&b.BalanceAmount,
			&b.CouponCode,
			&b.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
