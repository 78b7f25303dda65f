package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/retry"
)

const uniqueViolation = "23505"

// DB is the subset of *dbpg.DB the repositories use.
type DB interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
	ExecWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (sql.Result, error)
	QueryWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowWithRetry(ctx context.Context, strategy retry.Strategy, query string, args ...interface{}) (*sql.Row, error)
}

type BookingRepository struct {
	db       DB
	strategy retry.Strategy
}

func NewBookingRepo(db DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a booking unless its slot already holds slotLimit bookings.
// A transaction-scoped advisory lock on the slot serialises concurrent writers,
// so the count and the insert act as one unit.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, slotLimit int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT pg_advisory_xact_lock(hashtext($1 || '|' || $2))`
	if _, err = tx.ExecContext(ctx, lockQuery, b.Date, b.Time); err != nil {
		return fmt.Errorf("lock slot: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM bookings WHERE booking_date = $1 AND slot_time = $2`
	var booked int
	if err = tx.QueryRowContext(ctx, countQuery, b.Date, b.Time).Scan(&booked); err != nil {
		return fmt.Errorf("count slot bookings: %w", err)
	}

	if booked >= slotLimit {
		return domain.ErrSlotFull
	}

	query := `INSERT INTO bookings (user_id, name, age, gender, booking_date, slot_time, test_type, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query,
		b.UserID, b.Name, b.Age, b.Gender,
		b.Date, b.Time, b.TestType, b.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadyBooked
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByUser(ctx context.Context, userID string) (*domain.Booking, error) {
	query := `SELECT user_id, name, age, gender, booking_date, slot_time, test_type, created_at
			  FROM bookings
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(&b.UserID, &b.Name, &b.Age, &b.Gender, &b.Date, &b.Time, &b.TestType, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) CountBySlot(ctx context.Context, date, slot string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE booking_date = $1 AND slot_time = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, date, slot)
	if err != nil {
		return 0, fmt.Errorf("count bookings by slot: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return n, nil
}

func (r *BookingRepository) ListByDate(ctx context.Context, date string) ([]*domain.Booking, error) {
	query := `SELECT user_id, name, age, gender, booking_date, slot_time, test_type, created_at
              FROM bookings
              WHERE booking_date = $1
              ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, date)
	if err != nil {
		return nil, fmt.Errorf("list bookings by date: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT user_id, name, age, gender, booking_date, slot_time, test_type, created_at
              FROM bookings
              ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *BookingRepository) DeleteByUser(ctx context.Context, userID string) (bool, error) {
	query := `DELETE FROM bookings WHERE user_id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return false, fmt.Errorf("delete booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("booking rows affected: %w", err)
	}

	return n > 0, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.UserID, &b.Name, &b.Age, &b.Gender, &b.Date, &b.Time, &b.TestType, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
