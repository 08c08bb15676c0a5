package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/geekfaka/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewRedisCache stores JSON documents in redis. The client is shared with the
// login limiter, so Close leaves it open.
func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client:     client,
		defaultTTL: cfg.DefaultTTL,
	}
}

// Get reports a miss for absent keys. An entry that no longer decodes into
// value, e.g. after the catalog shape changed, is evicted and also reported
// as a miss so the caller reloads it.
func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		slog.Warn("Evicting undecodable cache entry", slog.String("key", key), slog.String("error", err.Error()))

		if err := r.client.Unlink(ctx, key).Err(); err != nil {
			return false, fmt.Errorf("cache evict %s: %w", key, err)
		}

		return false, nil
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.defaultTTL
	}

	return wrap("cache set", key, r.client.Set(ctx, key, data, ttl).Err())
}

// Delete unlinks keys; redis reclaims the memory in the background.
func (r *redisCache) Delete(ctx context.Context, keys ...string) error {

	if len(keys) == 0 {
		return nil
	}

	return wrap("cache delete", fmt.Sprint(keys), r.client.Unlink(ctx, keys...).Err())
}

func (r *redisCache) Close() error {
	return nil
}

func wrap(op, key string, err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s %s: %w", op, key, err)
}
