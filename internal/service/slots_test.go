package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSlotService_IsAvailable(t *testing.T) {
	tests := []struct {
		name   string
		booked int
		want   bool
	}{
		{"empty", 0, true},
		{"one left", 2, true},
		{"full", 3, false},
		{"over", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockBookingRepo(t)
			svc := NewSlotService(repo, 3)

			repo.EXPECT().CountBySlot(mock.Anything, tomorrow, "9:00 AM").Return(tt.booked, nil)

			ok, err := svc.IsAvailable(context.Background(), tomorrow, "9:00 AM")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestSlotService_IsAvailable_Error(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewSlotService(repo, 3)

	repo.EXPECT().CountBySlot(mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("db error"))

	ok, err := svc.IsAvailable(context.Background(), tomorrow, "9:00 AM")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSlotService_DefaultLimit(t *testing.T) {
	svc := NewSlotService(mocks.NewMockBookingRepo(t), 0)
	assert.Equal(t, domain.DefaultSlotLimit, svc.Limit())
}

func TestSlotService_Availability(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewSlotService(repo, 3)

	repo.EXPECT().CountBySlot(mock.Anything, tomorrow, "9:00 AM").Return(3, nil)
	repo.EXPECT().CountBySlot(mock.Anything, tomorrow, "10:00 AM").Return(1, nil)
	repo.EXPECT().CountBySlot(mock.Anything, tomorrow, "11:00 AM").Return(0, nil)
	repo.EXPECT().CountBySlot(mock.Anything, tomorrow, "12:00 PM").Return(5, nil)

	res, err := svc.Availability(context.Background(), tomorrow)
	require.NoError(t, err)
	require.Len(t, res, 4)

	assert.Equal(t, domain.SlotStatus{Time: "9:00 AM", Booked: 3, Available: 0, Full: true}, res[0])
	assert.Equal(t, domain.SlotStatus{Time: "10:00 AM", Booked: 1, Available: 2, Full: false}, res[1])
	assert.Equal(t, 3, res[2].Available)
	assert.Equal(t, 0, res[3].Available)
}

func TestSlotService_Availability_BadDate(t *testing.T) {
	svc := NewSlotService(mocks.NewMockBookingRepo(t), 3)

	_, err := svc.Availability(context.Background(), "11/03/2025")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSlotService_Stats(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := NewSlotService(repo, 3)

	repo.EXPECT().List(mock.Anything).Return([]*domain.Booking{
		{UserID: "a", Date: "2025-03-10"},
		{UserID: "b", Date: "2025-03-11"},
		{UserID: "c", Date: "2025-03-11"},
		{UserID: "d", Date: "2025-04-01"},
	}, nil)

	st, err := svc.Stats(context.Background(), testNow)
	require.NoError(t, err)
	assert.Equal(t, &domain.Stats{Total: 4, Today: 1, Tomorrow: 2}, st)
}
