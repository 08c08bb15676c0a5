package handlers

import (
	"log/slog"
	"net/http"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/errors"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils"
	"github.com/geekfaka/storefront/internal/utils/response"
)

type SettingHandler struct {
	settingService service.SettingService
}

func NewSettingHandler(settingService service.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// GetBaseConfig godoc
//
//	@Summary		Site title
//	@Description	Always answers; falls back to the configured default title.
//	@Tags			Store
//	@Produce		json
//	@Success		200	{object}	models.BaseConfigResponse	"Base config"
//	@Router			/config/base [get]
func (h *SettingHandler) GetBaseConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, h.settingService.GetBaseConfig(r.Context()))
	}
}

// GetPublicSettings godoc
//
//	@Summary	Public site settings
//	@Tags		Store
//	@Produce	json
//	@Success	200	{object}	map[string]string		"Settings"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Router		/store/settings [get]
func (h *SettingHandler) GetPublicSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		settings, err := h.settingService.GetPublicSettings(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, settings)
	}
}

// UpdateSettings godoc
//
//	@Summary		Update site settings
//	@Description	Accepts site_title, announcement and contact.
//	@Tags			Admin Settings
//	@Accept			json
//	@Produce		json
//	@Param			settings	body		map[string]string		true	"Settings to write"
//	@Success		200			{object}	map[string]string		"Settings after the update"
//	@Failure		400			{object}	response.ErrorResponse	"Unknown key"
//	@Failure		401			{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/settings [put]
func (h *SettingHandler) UpdateSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var values map[string]string
		if err := utils.DecodeJSONBody(r, &values); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		settings, err := h.settingService.UpdateSettings(r.Context(), values)
		if err != nil {
			logger.Warn("Failed to update settings", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Settings updated", slog.Int("keys", len(values)))
		response.Success(w, http.StatusOK, settings)
	}
}
