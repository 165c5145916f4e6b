package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
)

const redisPingTimeout = 2 * time.Second

// NewRedisClient connects to the configured Redis instance and pings it.
// An empty address returns (nil, nil): Redis backed features are disabled.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	if cfg.Address == "" {
		log.Info().Str("func", "NewRedisClient").Msg("redis address is not set, rate limiting disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: redis: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// redisAttemptCounter implements [AttemptCounter] as a fixed window counter:
// INCR on the key, with the expiry set when the window opens.
type redisAttemptCounter struct {
	client redis.Cmdable
	prefix string
}

// NewRedisAttemptCounter returns an [AttemptCounter] storing its keys under
// prefix.
func NewRedisAttemptCounter(client redis.Cmdable, prefix string) AttemptCounter {
	return &redisAttemptCounter{client: client, prefix: prefix}
}

func (c *redisAttemptCounter) Hit(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	fullKey := c.prefix + ":" + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		ttl = pipe.PTTL(ctx, fullKey)
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: redis: %w", ErrStoreUnavailable, err)
	}

	resetIn := ttl.Val()
	// a key without expiry has just been created (or lost its TTL)
	if resetIn < 0 {
		if err = c.client.PExpire(ctx, fullKey, window).Err(); err != nil {
			return 0, 0, fmt.Errorf("%w: redis: %w", ErrStoreUnavailable, err)
		}
		resetIn = window
	}

	return incr.Val(), resetIn, nil
}
