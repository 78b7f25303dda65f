package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/repository"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdmin(t *testing.T, operatorID string, repo *mocks.MockBookingRepo, exporter *mocks.MockBookingExporter) *AdminService {
	t.Helper()
	log := newTestLogger(t)
	reminders := NewReminderService(repo, repository.NewMemoryLedger(), mocks.NewMockReminderNotifier(t), nil, log, sevenAM, time.UTC)
	return NewAdminService(operatorID, repo, exporter, reminders, log)
}

func TestAdmin_Authorize(t *testing.T) {
	svc := newAdmin(t, "1000", mocks.NewMockBookingRepo(t), mocks.NewMockBookingExporter(t))

	assert.NoError(t, svc.Authorize("1000"))
	assert.ErrorIs(t, svc.Authorize("1001"), domain.ErrUnauthorized)
	assert.ErrorIs(t, svc.Authorize(""), domain.ErrUnauthorized)
}

func TestAdmin_Authorize_NoOperatorConfigured(t *testing.T) {
	svc := newAdmin(t, "", mocks.NewMockBookingRepo(t), mocks.NewMockBookingExporter(t))

	assert.ErrorIs(t, svc.Authorize(""), domain.ErrUnauthorized)
}

func TestAdmin_Export(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	exporter := mocks.NewMockBookingExporter(t)
	svc := newAdmin(t, "1000", repo, exporter)

	bookings := []*domain.Booking{{UserID: "u1"}}
	repo.EXPECT().List(mock.Anything).Return(bookings, nil)
	exporter.EXPECT().Export(bookings).Return([]byte("xlsx"), nil)

	data, err := svc.Export(context.Background(), "1000")
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
}

func TestAdmin_Export_Unauthorized(t *testing.T) {
	svc := newAdmin(t, "1000", mocks.NewMockBookingRepo(t), mocks.NewMockBookingExporter(t))

	_, err := svc.Export(context.Background(), "42")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAdmin_Export_RepoError(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := newAdmin(t, "1000", repo, mocks.NewMockBookingExporter(t))

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Export(context.Background(), "1000")
	assert.Error(t, err)
}

func TestAdmin_Bookings(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := newAdmin(t, "1000", repo, mocks.NewMockBookingExporter(t))
	ctx := context.Background()

	repo.EXPECT().List(mock.Anything).Return([]*domain.Booking{{UserID: "a"}, {UserID: "b"}}, nil).Once()
	repo.EXPECT().ListByDate(mock.Anything, tomorrow).Return([]*domain.Booking{{UserID: "b"}}, nil).Once()

	all, err := svc.Bookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byDate, err := svc.Bookings(ctx, tomorrow)
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	_, err = svc.Bookings(ctx, "March 11")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdmin_TriggerReminders(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	svc := newAdmin(t, "1000", repo, mocks.NewMockBookingExporter(t))

	repo.EXPECT().ListByDate(mock.Anything, "2025-03-10").Return(nil, nil)
	repo.EXPECT().ListByDate(mock.Anything, "2025-03-11").Return(nil, nil)

	report, err := svc.TriggerReminders(context.Background(), "1000", testNow)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", report.Today)
	assert.Zero(t, report.TodayCount+report.TomorrowCount)

	_, err = svc.TriggerReminders(context.Background(), "42", testNow)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
