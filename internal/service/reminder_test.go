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

var sevenAM = ClockTime{Hour: 7}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 3, day, hour, minute, 0, 0, time.UTC)
}

func seedReminderBookings(t *testing.T) *repository.MemoryBookingRepository {
	t.Helper()
	repo := repository.NewMemoryBookingRepo()
	ctx := context.Background()
	for _, b := range []*domain.Booking{
		{UserID: "today-1", Name: "A", Date: "2025-03-10", Time: "9:00 AM", TestType: "CBC"},
		{UserID: "today-2", Name: "B", Date: "2025-03-10", Time: "11:00 AM", TestType: "LFT"},
		{UserID: "tomorrow-1", Name: "C", Date: "2025-03-11", Time: "10:00 AM", TestType: "KFT"},
		{UserID: "later", Name: "D", Date: "2025-03-20", Time: "10:00 AM", TestType: "KFT"},
	} {
		require.NoError(t, repo.Create(ctx, b, 3))
	}
	return repo
}

func TestParseClockTime(t *testing.T) {
	c, err := ParseClockTime("07:00")
	require.NoError(t, err)
	assert.Equal(t, sevenAM, c)
	assert.Equal(t, "07:00", c.String())

	c, err = ParseClockTime("18:45")
	require.NoError(t, err)
	assert.Equal(t, ClockTime{Hour: 18, Minute: 45}, c)

	for _, bad := range []string{"00:00", "7am", "25:00", ""} {
		_, err = ParseClockTime(bad)
		assert.ErrorIs(t, err, domain.ErrValidation, bad)
	}
}

func TestReminder_Tick_SendsOncePerDay(t *testing.T) {
	repo := seedReminderBookings(t)
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repo, repository.NewMemoryLedger(), notifier, nil, newTestLogger(t), sevenAM, time.UTC)
	ctx := context.Background()

	notifier.EXPECT().NotifySameDay(mock.Anything, mock.Anything, false).Return(nil).Times(2)
	notifier.EXPECT().NotifyDayBefore(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == "tomorrow-1"
	}), false).Return(nil).Once()

	report, err := svc.Tick(ctx, at(10, 6, 59))
	require.NoError(t, err)
	assert.Nil(t, report)

	report, err = svc.Tick(ctx, at(10, 7, 0))
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, ReminderReport{
		Today:         "2025-03-10",
		Tomorrow:      "2025-03-11",
		TodayCount:    2,
		TomorrowCount: 1,
		Sent:          3,
	}, *report)

	// a second tick inside the same minute sends nothing
	report, err = svc.Tick(ctx, at(10, 7, 0).Add(30*time.Second))
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestReminder_Tick_MidnightClearsLedger(t *testing.T) {
	repo := repository.NewMemoryBookingRepo()
	ledger := repository.NewMemoryLedger()
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repo, ledger, notifier, nil, newTestLogger(t), sevenAM, time.UTC)
	ctx := context.Background()

	_, err := svc.Tick(ctx, at(10, 7, 0))
	require.NoError(t, err)
	sent, err := ledger.Has(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.True(t, sent)

	_, err = svc.Tick(ctx, at(11, 0, 0))
	require.NoError(t, err)
	sent, err = ledger.Has(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.False(t, sent)

	report, err := svc.Tick(ctx, at(11, 7, 0))
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "2025-03-11", report.Today)
}

func TestReminder_Tick_UsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	repo := repository.NewMemoryBookingRepo()
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repo, repository.NewMemoryLedger(), notifier, nil, newTestLogger(t), sevenAM, loc)

	// 01:30 UTC is 07:00 IST
	report, err := svc.Tick(context.Background(), time.Date(2025, 3, 10, 1, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "2025-03-10", report.Today)
}

func TestReminder_Tick_LedgerError(t *testing.T) {
	ledger := mocks.NewMockReminderLedger(t)
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repository.NewMemoryBookingRepo(), ledger, notifier, nil, newTestLogger(t), sevenAM, time.UTC)

	ledger.EXPECT().Has(mock.Anything, "2025-03-10").Return(false, errors.New("redis down"))

	_, err := svc.Tick(context.Background(), at(10, 7, 0))
	assert.Error(t, err)
}

func TestReminder_Tick_ListErrorDoesNotMark(t *testing.T) {
	repo := mocks.NewMockBookingRepo(t)
	ledger := mocks.NewMockReminderLedger(t)
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repo, ledger, notifier, nil, newTestLogger(t), sevenAM, time.UTC)

	ledger.EXPECT().Has(mock.Anything, "2025-03-10").Return(false, nil)
	repo.EXPECT().ListByDate(mock.Anything, "2025-03-10").Return(nil, errors.New("db down"))

	_, err := svc.Tick(context.Background(), at(10, 7, 0))
	assert.Error(t, err)
	ledger.AssertNotCalled(t, "Mark", mock.Anything, mock.Anything)
}

func TestReminder_Tick_FailedMarkDoesNotResend(t *testing.T) {
	repo := seedReminderBookings(t)
	ledger := mocks.NewMockReminderLedger(t)
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repo, ledger, notifier, nil, newTestLogger(t), sevenAM, time.UTC)
	ctx := context.Background()

	ledger.EXPECT().Has(mock.Anything, "2025-03-10").Return(false, nil).Once()
	notifier.EXPECT().NotifySameDay(mock.Anything, mock.Anything, false).Return(nil).Times(2)
	notifier.EXPECT().NotifyDayBefore(mock.Anything, mock.Anything, false).Return(nil).Once()
	ledger.EXPECT().Mark(mock.Anything, "2025-03-10").Return(errors.New("redis down")).Once()

	report, err := svc.Tick(ctx, at(10, 7, 0))
	assert.Error(t, err)
	require.NotNil(t, report)
	assert.Equal(t, 3, report.Sent)

	// the next tick in the same minute only retries the mark
	ledger.EXPECT().Mark(mock.Anything, "2025-03-10").Return(nil).Once()
	report, err = svc.Tick(ctx, at(10, 7, 0).Add(20*time.Second))
	require.NoError(t, err)
	assert.Nil(t, report)

	ledger.EXPECT().Has(mock.Anything, "2025-03-10").Return(true, nil).Once()
	report, err = svc.Tick(ctx, at(10, 7, 0).Add(40*time.Second))
	require.NoError(t, err)
	assert.Nil(t, report)
}

func TestReminder_Dispatch_FailureContinues(t *testing.T) {
	repo := seedReminderBookings(t)
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repo, repository.NewMemoryLedger(), notifier, nil, newTestLogger(t), sevenAM, time.UTC)

	notifier.EXPECT().NotifySameDay(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == "today-1"
	}), true).Return(errors.New("bot was blocked by the user")).Once()
	notifier.EXPECT().NotifySameDay(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == "today-2"
	}), true).Return(nil).Once()
	notifier.EXPECT().NotifyDayBefore(mock.Anything, mock.Anything, true).Return(nil).Once()

	report, err := svc.Dispatch(context.Background(), at(10, 15, 0), true)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
}

func TestReminder_Dispatch_Empty(t *testing.T) {
	notifier := mocks.NewMockReminderNotifier(t)
	svc := NewReminderService(repository.NewMemoryBookingRepo(), repository.NewMemoryLedger(), notifier, nil, newTestLogger(t), sevenAM, time.UTC)

	report, err := svc.Dispatch(context.Background(), at(31, 12, 0), true)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-31", report.Today)
	assert.Equal(t, "2025-04-01", report.Tomorrow)
	assert.Zero(t, report.Sent)
}
