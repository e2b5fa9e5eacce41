package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
)

// Storages bundles every repository the service layer depends on together
// with the connections backing them.
type Storages struct {
	UserRepository UserRepository

	db    *DB
	redis *redis.Client
}

// NewStorages connects to the configured database, applies migrations and,
// when a Redis URL is configured, puts the read cache in front of the user
// repository.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("database migrated")

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}

	if cfg.Cache.RedisURL == "" {
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Cache.RedisURL, cfg.Cache.PoolSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Dur("ttl", cfg.Cache.TTL).Msg("user read cache enabled")

	storages.redis = client
	storages.UserRepository = NewCachedUserRepository(storages.UserRepository, NewRedisUserCache(client, cfg.Cache.TTL), log)

	return storages, nil
}

// Close releases the database and cache connections.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = errors.Join(err, s.redis.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
