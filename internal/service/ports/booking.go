package ports

import (
	"context"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
)

// BookingRepo stores committed bookings. Create must check the slot count and insert
// as one atomic unit, returning domain.ErrSlotFull when limit is reached and
// domain.ErrAlreadyBooked when the user already holds a booking.
type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, slotLimit int) error
	GetByUser(ctx context.Context, userID string) (*domain.Booking, error)
	CountBySlot(ctx context.Context, date, time string) (int, error)
	ListByDate(ctx context.Context, date string) ([]*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	DeleteByUser(ctx context.Context, userID string) (bool, error)
}
