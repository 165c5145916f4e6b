package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-video-vault/internal/config"
	"github.com/MKhiriev/go-video-vault/internal/logger"
	"github.com/MKhiriev/go-video-vault/internal/utils"
)

// Storages bundles every store the services depend on.
// AttemptCounter is nil when Redis is not configured.
type Storages struct {
	UserRepository  UserRepository
	VideoRepository VideoRepository
	AttemptCounter  AttemptCounter

	db    *DB
	redis *redis.Client
}

// NewStorages opens the metadata database (running migrations) and, when
// configured, the Redis instance backing the login rate limiter.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	redisClient, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	ids := utils.NewUUIDGenerator()
	s := &Storages{
		UserRepository:  NewUserRepository(db, ids, log),
		VideoRepository: NewVideoRepository(db, ids, log),
		db:              db,
		redis:           redisClient,
	}
	if redisClient != nil {
		s.AttemptCounter = NewRedisAttemptCounter(redisClient, "login")
	}

	return s, nil
}

// Ping checks the metadata database.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
