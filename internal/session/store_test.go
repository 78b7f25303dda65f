package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dh139/venom-blood-test-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

const ttl = 15 * time.Minute

func TestStore_CreateTwice(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Create(domain.NewSession("u1", t0, ttl)))

	err := s.Create(domain.NewSession("u1", t0.Add(time.Minute), ttl))
	assert.ErrorIs(t, err, domain.ErrSessionActive)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)

	// an expired session can be replaced
	require.NoError(t, s.Create(domain.NewSession("u1", t0.Add(ttl), ttl)))
}

func TestStore_GetExpiresLazily(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Create(domain.NewSession("u1", t0, ttl)))

	_, ok := s.Get("u1", t0.Add(ttl-time.Second))
	assert.True(t, ok)

	_, ok = s.Get("u1", t0.Add(ttl))
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Update(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Create(domain.NewSession("u1", t0, ttl)))

	sess, err := s.Update("u1", t0, func(sess *domain.Session) error {
		sess.Draft.Name = "Alice"
		sess.Step = domain.StepAwaitingAge
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StepAwaitingAge, sess.Step)

	// a failing fn leaves the stored session untouched
	sess, err = s.Update("u1", t0, func(sess *domain.Session) error {
		sess.Step = domain.StepAwaitingTime
		return domain.ErrValidation
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.StepAwaitingAge, sess.Step)

	got, ok := s.Get("u1", t0)
	require.True(t, ok)
	assert.Equal(t, "Alice", got.Draft.Name)
	assert.Equal(t, domain.StepAwaitingAge, got.Step)
}

func TestStore_UpdateMissing(t *testing.T) {
	s := NewStore()

	_, err := s.Update("nobody", t0, func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStore_LockUnlock(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Create(domain.NewSession("u1", t0, ttl)))
	_, err := s.Update("u1", t0, func(sess *domain.Session) error {
		sess.Step = domain.StepAwaitingTime
		return nil
	})
	require.NoError(t, err)

	sess, err := s.Lock("u1", t0, nil)
	require.NoError(t, err)
	assert.True(t, sess.Locked)
	assert.Equal(t, domain.StepCommitting, sess.Step)

	_, err = s.Lock("u1", t0, nil)
	assert.ErrorIs(t, err, domain.ErrSessionBusy)

	_, err = s.Update("u1", t0, func(*domain.Session) error { return nil })
	assert.ErrorIs(t, err, domain.ErrSessionBusy)

	s.Unlock("u1")

	got, ok := s.Get("u1", t0)
	require.True(t, ok)
	assert.False(t, got.Locked)
	assert.Equal(t, domain.StepAwaitingTime, got.Step)
}

func TestStore_LockRefusedByPrecondition(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Create(domain.NewSession("u1", t0, ttl)))

	refused := errors.New("not ready")
	sess, err := s.Lock("u1", t0, func(*domain.Session) error { return refused })
	assert.ErrorIs(t, err, refused)
	assert.False(t, sess.Locked)
	assert.Equal(t, domain.StepAwaitingName, sess.Step)
}

func TestStore_OnlyOneLockHolder(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Create(domain.NewSession("u1", t0, ttl)))

	const workers = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Lock("u1", t0, nil); err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
}

func TestStore_Sweep(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Create(domain.NewSession("old", t0, ttl)))
	require.NoError(t, s.Create(domain.NewSession("new", t0.Add(10*time.Minute), ttl)))

	removed := s.Sweep(t0.Add(ttl))

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Delete("new"))
	assert.False(t, s.Delete("new"))
}
