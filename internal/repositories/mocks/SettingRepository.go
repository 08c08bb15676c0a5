package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type SettingRepository struct {
	mock.Mock
}

func (m *SettingRepository) GetSetting(ctx context.Context, key string) (*models.SystemSetting, error) {
	args := m.Called(ctx, key)
	return get[*models.SystemSetting](args, 0), args.Error(1)
}

func (m *SettingRepository) GetSettings(ctx context.Context, keys []string) (map[string]string, error) {
	args := m.Called(ctx, keys)
	return get[map[string]string](args, 0), args.Error(1)
}

func (m *SettingRepository) UpsertSettings(ctx context.Context, values map[string]string) error {
	return m.Called(ctx, values).Error(0)
}
