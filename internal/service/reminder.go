package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/metrics"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	reminderSameDay   = "same_day"
	reminderDayBefore = "day_before"
)

// ClockTime is a wall-clock hour and minute.
type ClockTime struct {
	Hour   int
	Minute int
}

func (c ClockTime) Matches(t time.Time) bool {
	return t.Hour() == c.Hour && t.Minute() == c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

var midnight = ClockTime{}

// ParseClockTime parses "HH:MM". Midnight is refused because it is the ledger reset minute.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%w: reminder time must be HH:MM", domain.ErrValidation)
	}
	c := ClockTime{Hour: t.Hour(), Minute: t.Minute()}
	if c == midnight {
		return ClockTime{}, fmt.Errorf("%w: reminder time cannot be 00:00", domain.ErrValidation)
	}
	return c, nil
}

// ReminderReport summarises one reminder batch.
type ReminderReport struct {
	Today         string `json:"today"`
	Tomorrow      string `json:"tomorrow"`
	TodayCount    int    `json:"today_count"`
	TomorrowCount int    `json:"tomorrow_count"`
	Sent          int    `json:"sent"`
	Failed        int    `json:"failed"`
}

// ReminderService sends same-day and day-before reminders once per calendar day.
type ReminderService struct {
	repo     ports.BookingRepo
	ledger   ports.ReminderLedger
	notifier ports.ReminderNotifier
	metrics  *metrics.BookingMetrics
	logger   logger.Logger

	at  ClockTime
	loc *time.Location

	// unmarked is a day whose batch went out but could not be recorded in the
	// ledger. It blocks a resend until the mark succeeds or the day ends.
	mu       sync.Mutex
	unmarked string
}

func NewReminderService(
	repo ports.BookingRepo,
	ledger ports.ReminderLedger,
	notifier ports.ReminderNotifier,
	m *metrics.BookingMetrics,
	logger logger.Logger,
	at ClockTime,
	loc *time.Location,
) *ReminderService {
	if loc == nil {
		loc = time.Local
	}
	return &ReminderService{
		repo:     repo,
		ledger:   ledger,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		at:       at,
		loc:      loc,
	}
}

// Tick runs the daily batch when now falls on the trigger minute and today's batch has
// not been sent yet, and clears the ledger at midnight. A missed trigger minute is not
// caught up. It returns nil when no batch ran.
func (s *ReminderService) Tick(ctx context.Context, now time.Time) (*ReminderReport, error) {
	local := now.In(s.loc)

	var report *ReminderReport
	if s.at.Matches(local) {
		today := local.Format(domain.DateLayout)

		if s.pendingMark(today) {
			if err := s.mark(ctx, today); err != nil {
				return nil, err
			}
			return nil, nil
		}

		sent, err := s.ledger.Has(ctx, today)
		if err != nil {
			return nil, fmt.Errorf("check reminder ledger: %w", err)
		}

		if !sent {
			report, err = s.Dispatch(ctx, local, false)
			if err != nil {
				return nil, err
			}
			s.setUnmarked(today)
			if err = s.mark(ctx, today); err != nil {
				return report, err
			}
		}
	}

	if midnight.Matches(local) {
		s.setUnmarked("")
		if err := s.ledger.Clear(ctx); err != nil {
			return report, fmt.Errorf("clear reminder ledger: %w", err)
		}
		s.logger.Debug("reminder ledger cleared")
	}

	return report, nil
}

func (s *ReminderService) mark(ctx context.Context, day string) error {
	if err := s.ledger.Mark(ctx, day); err != nil {
		return fmt.Errorf("mark reminder ledger: %w", err)
	}
	s.mu.Lock()
	if s.unmarked == day {
		s.unmarked = ""
	}
	s.mu.Unlock()
	return nil
}

func (s *ReminderService) pendingMark(day string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unmarked == day
}

func (s *ReminderService) setUnmarked(day string) {
	s.mu.Lock()
	s.unmarked = day
	s.mu.Unlock()
}

// Dispatch sends reminders for bookings dated on now's day (same-day) and the day after
// (day-before). It does not consult the ledger. A failed send is logged and counted but
// does not stop the batch. manual selects the operator test wording.
func (s *ReminderService) Dispatch(ctx context.Context, now time.Time, manual bool) (*ReminderReport, error) {
	local := now.In(s.loc)
	report := &ReminderReport{
		Today:    local.Format(domain.DateLayout),
		Tomorrow: local.AddDate(0, 0, 1).Format(domain.DateLayout),
	}

	todays, err := s.repo.ListByDate(ctx, report.Today)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", report.Today, err)
	}
	tomorrows, err := s.repo.ListByDate(ctx, report.Tomorrow)
	if err != nil {
		return nil, fmt.Errorf("list bookings for %s: %w", report.Tomorrow, err)
	}
	report.TodayCount = len(todays)
	report.TomorrowCount = len(tomorrows)

	s.logger.Info("sending reminders",
		logger.String("today", report.Today),
		logger.Int("same_day", len(todays)),
		logger.Int("day_before", len(tomorrows)),
		logger.Any("manual", manual),
	)

	for _, b := range todays {
		s.record(report, reminderSameDay, b, s.notifier.NotifySameDay(ctx, b, manual))
	}
	for _, b := range tomorrows {
		s.record(report, reminderDayBefore, b, s.notifier.NotifyDayBefore(ctx, b, manual))
	}

	return report, nil
}

func (s *ReminderService) record(report *ReminderReport, kind string, b *domain.Booking, err error) {
	s.metrics.ObserveReminder(kind, err)
	if err != nil {
		report.Failed++
		s.logger.Error("failed to send reminder",
			logger.String("kind", kind),
			logger.String("user_id", b.UserID),
			logger.String("error", err.Error()),
		)
		return
	}
	report.Sent++
	s.logger.Debug("reminder sent",
		logger.String("kind", kind),
		logger.String("user_id", b.UserID),
		logger.String("test", b.TestType),
		logger.String("time", b.Time),
	)
}
