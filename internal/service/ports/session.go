package ports

import (
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
)

// SessionStore owns the per-user conversation sessions.
// Get and Update treat expired sessions as absent and drop them.
type SessionStore interface {
	Create(s *domain.Session) error
	Get(userID string, now time.Time) (*domain.Session, bool)
	Update(userID string, now time.Time, fn func(s *domain.Session) error) (*domain.Session, error)
	Lock(userID string, now time.Time, fn func(s *domain.Session) error) (*domain.Session, error)
	Unlock(userID string)
	Delete(userID string) bool
	Sweep(now time.Time) int
	Len() int
}
