package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
)

// unreachableRedis is a local port nothing listens on.
const unreachableRedis = "127.0.0.1:1"

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.Redis{}, logger.Nop())

	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.Redis{Address: unreachableRedis}, logger.Nop())

	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Nil(t, client)
}

func TestRedisAttemptCounter_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: unreachableRedis, MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	counter := NewRedisAttemptCounter(client, "login")

	_, _, err := counter.Hit(context.Background(), "10.0.0.1", time.Minute)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
