package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
)

// MemoryBookingRepository keeps bookings in process memory. It backs the "memory"
// storage driver and tests.
type MemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
	seq      map[string]int
	next     int
}

func NewMemoryBookingRepo() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		bookings: make(map[string]domain.Booking),
		seq:      make(map[string]int),
	}
}

func (r *MemoryBookingRepository) Create(_ context.Context, b *domain.Booking, slotLimit int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.UserID]; ok {
		return domain.ErrAlreadyBooked
	}
	if r.countLocked(b.Date, b.Time) >= slotLimit {
		return domain.ErrSlotFull
	}

	r.bookings[b.UserID] = *b
	r.seq[b.UserID] = r.next
	r.next++
	return nil
}

func (r *MemoryBookingRepository) GetByUser(_ context.Context, userID string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[userID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepository) CountBySlot(_ context.Context, date, slot string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.countLocked(date, slot), nil
}

func (r *MemoryBookingRepository) ListByDate(_ context.Context, date string) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectLocked(func(b *domain.Booking) bool { return b.Date == date }), nil
}

func (r *MemoryBookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectLocked(func(*domain.Booking) bool { return true }), nil
}

func (r *MemoryBookingRepository) DeleteByUser(_ context.Context, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[userID]; !ok {
		return false, nil
	}
	delete(r.bookings, userID)
	delete(r.seq, userID)
	return true, nil
}

func (r *MemoryBookingRepository) countLocked(date, slot string) int {
	n := 0
	for _, b := range r.bookings {
		if b.Date == date && b.Time == slot {
			n++
		}
	}
	return n
}

// collectLocked returns matching bookings in insertion order.
func (r *MemoryBookingRepository) collectLocked(match func(b *domain.Booking) bool) []*domain.Booking {
	var res []*domain.Booking
	for _, b := range r.bookings {
		b := b
		if match(&b) {
			res = append(res, &b)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return r.seq[res[i].UserID] < r.seq[res[j].UserID]
	})
	return res
}
