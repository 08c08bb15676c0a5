package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	// CheckLoginRateLimit records an attempt and returns whether it is
	// allowed, the attempts left and, when blocked, the seconds to wait.
	CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error)
	ResetLoginAttempts(ctx context.Context, username string) error
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("host", cfg.RedisConnect.Host), slog.String("port", cfg.RedisConnect.Port))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil

}

func NewRateLimitRepo(client *redis.Client, cfg *config.RateConfig) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg, now: time.Now}
}

func loginAttemptsKey(username string) string {
	return "login_attempts:" + username
}

// CheckLoginRateLimit keeps a sorted set of attempt timestamps (milliseconds)
// per username and counts the ones inside the sliding window.
func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, username string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := loginAttemptsKey(username)

	now := r.now()
	nowMs := now.UnixMilli()
	windowStart := nowMs - r.cfg.WindowSize.Milliseconds()

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: strconv.FormatInt(now.UnixNano(), 10)})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(r.cfg.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldestMs := int64(scores[0].Score)
		retryAfterMs := max(oldestMs+r.cfg.WindowSize.Milliseconds()-nowMs, 0)
		retryAfter := int((retryAfterMs + 999) / 1000)

		logger.Warn("Rate limit exceeded for user", slog.String("username", username), slog.Int64("attempts", attempts))
		return false, 0, retryAfter, nil
	}

	return true, int(r.cfg.MaxAttempts - attempts), 0, nil
}

func (r *redisRepository) ResetLoginAttempts(ctx context.Context, username string) error {
	if err := r.client.Del(ctx, loginAttemptsKey(username)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}

	return nil
}
