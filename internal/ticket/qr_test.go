package ticket

import (
	"bytes"
	"testing"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestQRRenderer_Render(t *testing.T) {
	r := NewQRRenderer(0)

	png, err := r.Render(&domain.Booking{
		UserID:   "42",
		Name:     "Asha",
		TestType: "CBC",
		Date:     "2024-06-10",
		Time:     "9:00 AM",
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestPayload(t *testing.T) {
	b := &domain.Booking{Name: "Asha", TestType: "LFT", Date: "2024-06-10", Time: "10:00 AM"}

	assert.Equal(t, "Name: Asha\nTest: LFT\nDate: 2024-06-10\nTime: 10:00 AM", Payload(b))
}
