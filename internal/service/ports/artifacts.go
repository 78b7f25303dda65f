package ports

import "github.com/dh139/venom-blood-test-bot/internal/domain"

type TicketRenderer interface {
	Render(b *domain.Booking) ([]byte, error)
}

type BookingExporter interface {
	Export(bookings []*domain.Booking) ([]byte, error)
}
