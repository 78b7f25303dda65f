package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports"
)

// SlotService answers capacity questions by counting stored bookings.
// It is a plain read: the atomic check lives in BookingRepo.Create.
type SlotService struct {
	repo  ports.BookingRepo
	limit int
}

func NewSlotService(repo ports.BookingRepo, limit int) *SlotService {
	if limit <= 0 {
		limit = domain.DefaultSlotLimit
	}
	return &SlotService{repo: repo, limit: limit}
}

func (s *SlotService) Limit() int {
	return s.limit
}

func (s *SlotService) IsAvailable(ctx context.Context, date, slot string) (bool, error) {
	n, err := s.CountAt(ctx, date, slot)
	if err != nil {
		return false, err
	}
	return n < s.limit, nil
}

func (s *SlotService) CountAt(ctx context.Context, date, slot string) (int, error) {
	n, err := s.repo.CountBySlot(ctx, date, slot)
	if err != nil {
		return 0, fmt.Errorf("count slot %s %s: %w", date, slot, err)
	}
	return n, nil
}

// Availability reports every time slot of a date.
func (s *SlotService) Availability(ctx context.Context, date string) ([]domain.SlotStatus, error) {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}

	res := make([]domain.SlotStatus, 0, len(domain.TimeSlots))
	for _, slot := range domain.TimeSlots {
		n, err := s.CountAt(ctx, date, slot)
		if err != nil {
			return nil, err
		}
		available := s.limit - n
		if available < 0 {
			available = 0
		}
		res = append(res, domain.SlotStatus{
			Time:      slot,
			Booked:    n,
			Available: available,
			Full:      n >= s.limit,
		})
	}

	return res, nil
}

// Stats counts all bookings and those dated today and tomorrow relative to now.
func (s *SlotService) Stats(ctx context.Context, now time.Time) (*domain.Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	today := now.Format(domain.DateLayout)
	tomorrow := now.AddDate(0, 0, 1).Format(domain.DateLayout)

	st := &domain.Stats{Total: len(all)}
	for _, b := range all {
		switch b.Date {
		case today:
			st.Today++
		case tomorrow:
			st.Tomorrow++
		}
	}

	return st, nil
}
