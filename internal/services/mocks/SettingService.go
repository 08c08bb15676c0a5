package mocks

import (
	"context"

	"github.com/geekfaka/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type SettingService struct {
	mock.Mock
}

func (m *SettingService) GetBaseConfig(ctx context.Context) *models.BaseConfigResponse {
	return get[*models.BaseConfigResponse](m.Called(ctx), 0)
}

func (m *SettingService) GetPublicSettings(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	return get[map[string]string](args, 0), args.Error(1)
}

func (m *SettingService) UpdateSettings(ctx context.Context, values map[string]string) (map[string]string, error) {
	args := m.Called(ctx, values)
	return get[map[string]string](args, 0), args.Error(1)
}
