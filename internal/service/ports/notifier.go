package ports

import (
	"context"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking) error
	NotifyTicket(ctx context.Context, userID string, png []byte) error
	NotifyTicketFailed(ctx context.Context, userID string) error
}

type ReminderNotifier interface {
	NotifySameDay(ctx context.Context, b *domain.Booking, manual bool) error
	NotifyDayBefore(ctx context.Context, b *domain.Booking, manual bool) error
}
