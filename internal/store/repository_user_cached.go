package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

// cachedUserRepository serves GetUser from a [UserCache] and keeps the cache
// coherent by dropping an entry after every successful write to it. A fill
// carries the generation seen on the miss, so a record read before a
// concurrent write is never cached.
// Cache failures are logged and never fail the request.
type cachedUserRepository struct {
	next   UserRepository
	cache  UserCache
	logger *logger.Logger
}

// NewCachedUserRepository wraps next with a read cache.
func NewCachedUserRepository(next UserRepository, cache UserCache, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating cached user repository")
	return &cachedUserRepository{
		next:   next,
		cache:  cache,
		logger: logger,
	}
}

func (c *cachedUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return c.next.ListUsers(ctx)
}

func (c *cachedUserRepository) GetUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	cached, generation, err := c.cache.GetUser(ctx, id)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", id).Msg("user cache read failed")
	}
	if cached != nil {
		return *cached, nil
	}

	user, err := c.next.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	err = c.cache.SetUser(ctx, user, generation)
	switch {
	case errors.Is(err, ErrStaleCacheFill):
		log.Debug().Int64("user_id", id).Msg("user changed during cache fill, not cached")
	case err != nil:
		log.Warn().Err(err).Int64("user_id", id).Msg("user cache write failed")
	}

	return user, nil
}

func (c *cachedUserRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error) {
	user, err := c.next.UpdateUser(ctx, id, update)
	if err != nil {
		return models.User{}, err
	}

	c.invalidate(ctx, id)
	return user, nil
}

func (c *cachedUserRepository) DeleteUser(ctx context.Context, id int64) (models.User, error) {
	user, err := c.next.DeleteUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	c.invalidate(ctx, id)
	return user, nil
}

func (c *cachedUserRepository) invalidate(ctx context.Context, id int64) {
	if err := c.cache.Invalidate(ctx, id); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", id).Msg("user cache invalidation failed")
	}
}
