package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-user-keeper/models"
)

const (
	userCacheKeyPrefix      = "users:id:"
	userGenerationKeyPrefix = "users:gen:"
)

// userGenerationTTL bounds how long a generation outlives its last
// invalidation. A fill that takes longer than this may store a stale record.
const userGenerationTTL = 24 * time.Hour

type redisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient parses url, applies poolSize and pings the server.
func NewRedisClient(ctx context.Context, url string, poolSize int) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	if poolSize > 0 {
		opt.PoolSize = poolSize
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// NewRedisUserCache returns a [UserCache] storing JSON encoded users for ttl.
func NewRedisUserCache(client *redis.Client, ttl time.Duration) UserCache {
	return &redisUserCache{client: client, ttl: ttl}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("%s%d", userCacheKeyPrefix, id)
}

func userGenerationKey(id int64) string {
	return fmt.Sprintf("%s%d", userGenerationKeyPrefix, id)
}

// GetUser reads the entry and its generation with a single MGET, so the
// generation returned on a miss is the one current at the time of the miss.
func (r *redisUserCache) GetUser(ctx context.Context, id int64) (*models.User, int64, error) {
	vals, err := r.client.MGet(ctx, userCacheKey(id), userGenerationKey(id)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get from redis: %w", err)
	}

	generation, err := parseGeneration(vals[1])
	if err != nil {
		return nil, 0, err
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, generation, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, generation, fmt.Errorf("failed to unmarshal cached user: %w", err)
	}

	return &user, generation, nil
}

// SetUser writes the entry under WATCH of the generation key. A concurrent
// Invalidate either changes the generation before the check or aborts the
// transaction.
func (r *redisUserCache) SetUser(ctx context.Context, user models.User, generation int64) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal cached user: %w", err)
	}

	generationKey := userGenerationKey(user.ID)

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return ErrStaleCacheFill
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, userCacheKey(user.ID), data, r.ttl)
			return nil
		})
		return err
	}, generationKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStaleCacheFill), errors.Is(err, redis.TxFailedErr):
		return ErrStaleCacheFill
	default:
		return fmt.Errorf("failed to set redis cache: %w", err)
	}
}

// Invalidate advances the generation and deletes the entry in one MULTI.
func (r *redisUserCache) Invalidate(ctx context.Context, id int64) error {
	generationKey := userGenerationKey(id)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Expire(ctx, generationKey, userGenerationTTL)
		pipe.Del(ctx, userCacheKey(id))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate redis cache: %w", err)
	}

	return nil
}

func parseGeneration(val any) (int64, error) {
	if val == nil {
		return 0, nil
	}

	s, ok := val.(string)
	if !ok {
		return 0, fmt.Errorf("unexpected cache generation type %T", val)
	}

	generation, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cache generation %q: %w", s, err)
	}
	return generation, nil
}
