package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// AdminService holds the operator-only operations.
type AdminService struct {
	operatorID string
	repo       ports.BookingRepo
	exporter   ports.BookingExporter
	reminders  *ReminderService
	logger     logger.Logger
}

func NewAdminService(
	operatorID string,
	repo ports.BookingRepo,
	exporter ports.BookingExporter,
	reminders *ReminderService,
	logger logger.Logger,
) *AdminService {
	return &AdminService{
		operatorID: operatorID,
		repo:       repo,
		exporter:   exporter,
		reminders:  reminders,
		logger:     logger,
	}
}

// Authorize accepts only an exact match on the configured operator id.
// An empty configured id disables admin access.
func (s *AdminService) Authorize(userID string) error {
	if s.operatorID == "" || userID != s.operatorID {
		s.logger.Warn("unauthorized admin request", logger.String("user_id", userID))
		return domain.ErrUnauthorized
	}
	return nil
}

// Bookings lists stored bookings, all of them when date is empty.
func (s *AdminService) Bookings(ctx context.Context, date string) ([]*domain.Booking, error) {
	if date == "" {
		return s.repo.List(ctx)
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return s.repo.ListByDate(ctx, date)
}

// Export renders every stored booking as a spreadsheet.
func (s *AdminService) Export(ctx context.Context, userID string) ([]byte, error) {
	if err := s.Authorize(userID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	data, err := s.exporter.Export(bookings)
	if err != nil {
		return nil, fmt.Errorf("export bookings: %w", err)
	}

	s.logger.Info("bookings exported", logger.Int("count", len(bookings)))
	return data, nil
}

// TriggerReminders runs the reminder batch now, outside the daily schedule.
func (s *AdminService) TriggerReminders(ctx context.Context, userID string, now time.Time) (*ReminderReport, error) {
	if err := s.Authorize(userID); err != nil {
		return nil, err
	}
	return s.reminders.Dispatch(ctx, now, true)
}
