// Package session keeps the in-flight booking conversations, one per user.
package session

import (
	"sync"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
)

type entry struct {
	session  domain.Session
	prevStep domain.Step
}

// Store is a concurrency-safe map of sessions keyed by user id.
// Sessions handed out are copies; changes go through Update, Lock and Unlock.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*entry)}
}

// Create registers a new session. It fails with domain.ErrSessionActive when the
// user already has a live one.
func (s *Store) Create(sess *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.sessions[sess.UserID]; ok && !e.session.Expired(sess.CreatedAt) {
		return domain.ErrSessionActive
	}

	s.sessions[sess.UserID] = &entry{session: *sess}
	return nil
}

func (s *Store) Get(userID string, now time.Time) (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(userID, now)
	if !ok {
		return nil, false
	}
	cp := e.session
	return &cp, true
}

// Update applies fn to a copy of the session and stores the result if fn succeeds.
func (s *Store) Update(userID string, now time.Time, fn func(sess *domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(userID, now)
	if !ok {
		return nil, domain.ErrNoSession
	}
	if e.session.Locked {
		cp := e.session
		return &cp, domain.ErrSessionBusy
	}

	cp := e.session
	if err := fn(&cp); err != nil {
		orig := e.session
		return &orig, err
	}
	e.session = cp
	return &cp, nil
}

// Lock marks the session as committing. Only one caller can hold the lock;
// the rest get domain.ErrSessionBusy. fn runs first on a copy and may refuse the
// lock by returning an error; its changes are kept when it succeeds.
func (s *Store) Lock(userID string, now time.Time, fn func(sess *domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(userID, now)
	if !ok {
		return nil, domain.ErrNoSession
	}
	if e.session.Locked {
		cp := e.session
		return &cp, domain.ErrSessionBusy
	}

	if fn != nil {
		cp := e.session
		if err := fn(&cp); err != nil {
			orig := e.session
			return &orig, err
		}
		e.session = cp
	}

	e.prevStep = e.session.Step
	e.session.Locked = true
	e.session.Step = domain.StepCommitting
	cp := e.session
	return &cp, nil
}

// Unlock releases a commit lock and restores the step held before Lock.
func (s *Store) Unlock(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[userID]
	if !ok || !e.session.Locked {
		return
	}
	e.session.Locked = false
	e.session.Step = e.prevStep
}

func (s *Store) Delete(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[userID]
	delete(s.sessions, userID)
	return ok
}

// Sweep drops every expired session and reports how many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if e.session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// live must be called with mu held.
func (s *Store) live(userID string, now time.Time) (*entry, bool) {
	e, ok := s.sessions[userID]
	if !ok {
		return nil, false
	}
	if e.session.Expired(now) {
		delete(s.sessions, userID)
		return nil, false
	}
	return e, true
}
