package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
)

type SettingService interface {
	// GetBaseConfig never fails; storage problems fall back to defaults.
	GetBaseConfig(ctx context.Context) *models.BaseConfigResponse
	GetPublicSettings(ctx context.Context) (map[string]string, error)
	UpdateSettings(ctx context.Context, values map[string]string) (map[string]string, error)
}

type settingService struct {
	repo         repository.SettingRepository
	cache        cache.Cache
	defaultTitle string
}

func NewSettingService(repo repository.SettingRepository, c cache.Cache, defaultTitle string) SettingService {
	return &settingService{repo: repo, cache: c, defaultTitle: defaultTitle}
}

func (s *settingService) GetBaseConfig(ctx context.Context) *models.BaseConfigResponse {

	settings, err := s.GetPublicSettings(ctx)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Falling back to default site title", slog.String("error", err.Error()))
		return &models.BaseConfigResponse{SiteTitle: s.defaultTitle}
	}

	return &models.BaseConfigResponse{SiteTitle: settings[models.SettingSiteTitle]}
}

func (s *settingService) GetPublicSettings(ctx context.Context) (map[string]string, error) {

	logger := middleware.LoggerFromContext(ctx)

	settings, _, err := cache.Remember(ctx, s.cache, logger, cache.PublicSettingsKey, 0, func(ctx context.Context) (map[string]string, error) {
		values, err := s.repo.GetSettings(ctx, models.PublicSettingKeys)
		if err != nil {
			return nil, err
		}

		out := make(map[string]string, len(models.PublicSettingKeys))
		for _, key := range models.PublicSettingKeys {
			out[key] = values[key]
		}

		return out, nil
	})
	if err != nil {
		return nil, storeError(ctx, err, "Setting")
	}

	if settings[models.SettingSiteTitle] == "" {
		settings[models.SettingSiteTitle] = s.defaultTitle
	}

	return settings, nil
}

func (s *settingService) UpdateSettings(ctx context.Context, values map[string]string) (map[string]string, error) {

	if len(values) == 0 {
		return nil, appErrors.ValidationError("No settings supplied")
	}

	for key := range values {
		if !slices.Contains(models.PublicSettingKeys, key) {
			return nil, appErrors.AddValidationError(key, "unknown setting")
		}
	}

	if err := s.repo.UpsertSettings(ctx, values); err != nil {
		return nil, storeError(ctx, err, "Setting")
	}

	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.PublicSettingsKey)

	return s.GetPublicSettings(ctx)
}
