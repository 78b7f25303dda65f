package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"unknown": logger.InfoLevel,
	}
	for level, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: level}.LogLevel(), level)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host: "db", Port: 5433, User: "bot", Password: "secret", Database: "bloodtest", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5433 user=bot password=secret dbname=bloodtest sslmode=disable", p.DSN())
}

func TestBookingConfig_Location(t *testing.T) {
	loc, err := BookingConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = BookingConfig{Timezone: "Local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	_, err = BookingConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestSwitches(t *testing.T) {
	assert.True(t, StorageConfig{Driver: StoragePostgres}.UsePostgres())
	assert.False(t, StorageConfig{Driver: StorageMemory}.UsePostgres())

	assert.True(t, RedisConfig{Addr: "localhost:6379"}.Enabled())
	assert.False(t, RedisConfig{}.Enabled())
}
