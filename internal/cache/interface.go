package cache

import (
	"context"
	"log/slog"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	// CatalogKey holds the whole storefront catalog. Bump the version when its shape changes.
	CatalogKey        = "catalog:v1"
	PublicSettingsKey = "settings:public"
	ArticleKeyPrefix  = "article"
)

// Remember returns the cached value under key, or calls load and caches its
// result. Cache failures are logged and never surface to the caller; a nil
// Cache disables caching.
func Remember[T any](ctx context.Context, c Cache, logger *slog.Logger, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, bool, error) {
	var value T

	if c != nil {
		found, err := c.Get(ctx, key, &value)
		if err != nil {
			logger.Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		} else if found {
			return value, true, nil
		}
	}

	value, err := load(ctx)
	if err != nil {
		return value, false, err
	}

	if c != nil {
		if err := c.Set(ctx, key, value, ttl); err != nil {
			logger.Warn("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	return value, false, nil
}

// Invalidate drops keys, logging instead of failing.
func Invalidate(ctx context.Context, c Cache, logger *slog.Logger, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.Delete(ctx, keys...); err != nil {
		logger.Warn("Cache invalidation failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
