package mocks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

// Get returns (found, err). When found, a JSON-encodable third return value
// set with Return(true, nil, cached) is copied into value.
func (m *Cache) Get(ctx context.Context, key string, value any) (bool, error) {
	args := m.Called(ctx, key, value)

	if len(args) > 2 && args.Bool(0) {
		data, err := json.Marshal(args.Get(2))
		if err != nil {
			return false, err
		}

		if err := json.Unmarshal(data, value); err != nil {
			return false, err
		}
	}

	return args.Bool(0), args.Error(1)
}

func (m *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}

func (m *Cache) Delete(ctx context.Context, keys ...string) error {
	args := make([]any, 0, len(keys)+1)
	args = append(args, ctx)

	for _, k := range keys {
		args = append(args, k)
	}

	return m.Called(args...).Error(0)
}

func (m *Cache) Close() error {
	return m.Called().Error(0)
}
