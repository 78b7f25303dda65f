package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

const ledgerKey = "reminders:ledger"

// MemoryLedger is a process-local set of dates whose reminders went out.
type MemoryLedger struct {
	mu    sync.Mutex
	dates map[string]struct{}
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{dates: make(map[string]struct{})}
}

func (l *MemoryLedger) Has(_ context.Context, date string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.dates[date]
	return ok, nil
}

func (l *MemoryLedger) Mark(_ context.Context, date string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dates[date] = struct{}{}
	return nil
}

func (l *MemoryLedger) Clear(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.dates)
	return nil
}

// RedisLedger keeps the ledger in a Redis set so it survives restarts.
type RedisLedger struct {
	client *redis.Client
	key    string
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	if client == nil {
		panic("repository: redis client cannot be nil")
	}
	return &RedisLedger{client: client, key: ledgerKey}
}

func (l *RedisLedger) Has(ctx context.Context, date string) (bool, error) {
	ok, err := l.client.SIsMember(ctx, l.key, date).Result()
	if err != nil {
		return false, fmt.Errorf("ledger lookup: %w", err)
	}
	return ok, nil
}

func (l *RedisLedger) Mark(ctx context.Context, date string) error {
	if err := l.client.SAdd(ctx, l.key, date).Err(); err != nil {
		return fmt.Errorf("ledger mark: %w", err)
	}
	return nil
}

func (l *RedisLedger) Clear(ctx context.Context) error {
	if err := l.client.Del(ctx, l.key).Err(); err != nil {
		return fmt.Errorf("ledger clear: %w", err)
	}
	return nil
}
