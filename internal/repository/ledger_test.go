package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dh139/venom-blood-test-bot/internal/service/ports"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLedger(t *testing.T) (*RedisLedger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLedger(client), mr
}

func TestLedgers(t *testing.T) {
	redisLedger, _ := newRedisLedger(t)

	ledgers := map[string]ports.ReminderLedger{
		"memory": NewMemoryLedger(),
		"redis":  redisLedger,
	}

	for name, ledger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			sent, err := ledger.Has(ctx, "2025-03-10")
			require.NoError(t, err)
			assert.False(t, sent)

			require.NoError(t, ledger.Mark(ctx, "2025-03-10"))
			require.NoError(t, ledger.Mark(ctx, "2025-03-10"))

			sent, err = ledger.Has(ctx, "2025-03-10")
			require.NoError(t, err)
			assert.True(t, sent)

			sent, err = ledger.Has(ctx, "2025-03-11")
			require.NoError(t, err)
			assert.False(t, sent)

			require.NoError(t, ledger.Clear(ctx))

			sent, err = ledger.Has(ctx, "2025-03-10")
			require.NoError(t, err)
			assert.False(t, sent)
		})
	}
}

func TestRedisLedger_SurvivesNewClient(t *testing.T) {
	ledger, mr := newRedisLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Mark(ctx, "2025-03-10"))

	other := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer other.Close()

	sent, err := NewRedisLedger(other).Has(ctx, "2025-03-10")
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestRedisLedger_Unavailable(t *testing.T) {
	ledger, mr := newRedisLedger(t)
	mr.Close()

	_, err := ledger.Has(context.Background(), "2025-03-10")
	assert.Error(t, err)
}

func TestNewRedisLedger_NilClientPanics(t *testing.T) {
	assert.Panics(t, func() { NewRedisLedger(nil) })
}
