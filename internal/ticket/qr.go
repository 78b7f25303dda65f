// Package ticket renders the scannable booking ticket shown at the clinic.
package ticket

import (
	"fmt"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	qrcode "github.com/skip2/go-qrcode"
)

const defaultSize = 256

type QRRenderer struct {
	size int
}

func NewQRRenderer(size int) *QRRenderer {
	if size <= 0 {
		size = defaultSize
	}
	return &QRRenderer{size: size}
}

// Render returns a PNG QR code carrying the booking's name, test, date and time.
func (r *QRRenderer) Render(b *domain.Booking) ([]byte, error) {
	png, err := qrcode.Encode(Payload(b), qrcode.Medium, r.size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func Payload(b *domain.Booking) string {
	return fmt.Sprintf("Name: %s\nTest: %s\nDate: %s\nTime: %s", b.Name, b.TestType, b.Date, b.Time)
}
