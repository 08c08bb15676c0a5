package repository

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/geekfaka/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRateLimiter(t *testing.T, now time.Time) (*redisRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	t.Cleanup(func() { client.Close() })

	cfg := &config.RateConfig{MaxAttempts: 3, WindowSize: time.Minute}

	repo := NewRateLimitRepo(client, cfg).(*redisRepository)
	repo.now = func() time.Time { return now }

	return repo, mock
}

func expectAttempt(mock redismock.ClientMock, key string, now time.Time, window time.Duration, count int64) {
	nowMs := now.UnixMilli()

	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(nowMs-window.Milliseconds(), 10)).SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(nowMs), Member: strconv.FormatInt(now.UnixNano(), 10)}).SetVal(1)
	mock.ExpectZCard(key).SetVal(count)
	mock.ExpectExpire(key, window).SetVal(true)
}

func TestCheckLoginRateLimit(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	key := "login_attempts:admin"

	t.Run("Allowed - Under the limit", func(t *testing.T) {
		repo, mock := newTestRateLimiter(t, now)
		expectAttempt(mock, key, now, time.Minute, 2)

		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "admin")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, remaining)
		assert.Equal(t, 0, retryAfter)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Allowed - Exactly at the limit", func(t *testing.T) {
		repo, mock := newTestRateLimiter(t, now)
		expectAttempt(mock, key, now, time.Minute, 3)

		allowed, remaining, _, err := repo.CheckLoginRateLimit(t.Context(), "admin")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 0, remaining)
	})

	t.Run("Blocked - Retry after oldest attempt leaves the window", func(t *testing.T) {
		repo, mock := newTestRateLimiter(t, now)
		expectAttempt(mock, key, now, time.Minute, 4)

		oldest := now.Add(-20 * time.Second)
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{{Score: float64(oldest.UnixMilli()), Member: "x"}})

		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), "admin")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.Equal(t, 40, retryAfter)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Pipeline error", func(t *testing.T) {
		repo, mock := newTestRateLimiter(t, now)
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.UnixMilli()-time.Minute.Milliseconds(), 10)).
			SetErr(errors.New("connection refused"))

		allowed, _, _, err := repo.CheckLoginRateLimit(t.Context(), "admin")

		require.Error(t, err)
		assert.False(t, allowed)
	})
}

func TestResetLoginAttempts(t *testing.T) {
	repo, mock := newTestRateLimiter(t, time.Now())

	mock.ExpectDel("login_attempts:admin").SetVal(1)
	require.NoError(t, repo.ResetLoginAttempts(t.Context(), "admin"))

	mock.ExpectDel("login_attempts:admin").SetErr(errors.New("timeout"))
	assert.Error(t, repo.ResetLoginAttempts(t.Context(), "admin"))

	require.NoError(t, mock.ExpectationsWereMet())
}
