package scheduler

import (
	"context"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/service"
	"github.com/wb-go/wbf/logger"
)

type reminderTicker interface {
	Tick(ctx context.Context, now time.Time) (*service.ReminderReport, error)
}

type sessionSweeper interface {
	SweepExpired(now time.Time) int
}

type Scheduler struct {
	reminders reminderTicker
	sessions  sessionSweeper
	interval  time.Duration
	now       func() time.Time
	logger    logger.Logger
}

func New(
	reminders reminderTicker,
	sessions sessionSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		sessions:  sessions,
		interval:  interval,
		now:       time.Now,
		logger:    logger,
	}
}

// Start blocks until ctx is done. The interval must not exceed one minute,
// otherwise the reminder trigger minute can be skipped.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.now()

	s.sessions.SweepExpired(now)

	report, err := s.reminders.Tick(ctx, now)
	if err != nil {
		s.logger.Error("reminder tick failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if report != nil {
		s.logger.Info("daily reminders dispatched",
			logger.String("today", report.Today),
			logger.Int("sent", report.Sent),
			logger.Int("failed", report.Failed),
		)
	}
}
