package handlers

import (
	"log/slog"
	"net/http"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils"
	"github.com/geekfaka/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type LicenseHandler struct {
	licenseService service.LicenseService
	validator      *validator.Validate
}

func NewLicenseHandler(licenseService service.LicenseService) *LicenseHandler {
	return &LicenseHandler{licenseService: licenseService, validator: utils.NewValidator()}
}

// ImportLicenses godoc
//
//	@Summary		Import license keys for a product
//	@Description	Keys come as a list, as newline separated text, or both. Blank lines and keys already held are skipped.
//	@Tags			Admin Licenses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Product ID"
//	@Param			keys	body		models.ImportLicensesRequest	true	"Keys to import"
//	@Success		201		{object}	models.ImportLicensesResponse	"Import summary"
//	@Failure		400		{object}	response.ErrorResponse			"No keys supplied"
//	@Failure		404		{object}	response.ErrorResponse			"Product not found"
//	@Security		BearerAuth
//	@Router			/admin/products/{id}/licenses [post]
func (h *LicenseHandler) ImportLicenses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.ImportLicensesRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		result, err := h.licenseService.ImportLicenses(r.Context(), productID, &req)
		if err != nil {
			logger.Error("Failed to import licenses", slog.String("productId", productID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Licenses imported",
			slog.String("productId", productID),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped))
		response.Success(w, http.StatusCreated, result)
	}
}

// ListLicenses godoc
//
//	@Summary	List a product's license keys
//	@Tags		Admin Licenses
//	@Produce	json
//	@Param		id			path		string											true	"Product ID"
//	@Param		status		query		string											false	"Filter by status"	Enums(AVAILABLE, RESERVED, SOLD)
//	@Param		page		query		int												false	"Page number (default: 1)"
//	@Param		pageSize	query		int												false	"Items per page (default: 20, max: 100)"
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.License}	"Licenses"
//	@Failure	400			{object}	response.ErrorResponse							"Unknown status"
//	@Security	BearerAuth
//	@Router		/admin/products/{id}/licenses [get]
func (h *LicenseHandler) ListLicenses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		productID, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		status := models.LicenseStatus(r.URL.Query().Get("status"))
		switch status {
		case "", models.LicenseStatusAvailable, models.LicenseStatusReserved, models.LicenseStatusSold:
		default:
			response.Error(w, errors.AddValidationError("status", "must be one of AVAILABLE, RESERVED, SOLD"))
			return
		}

		page, pageSize := utils.ParsePagination(r)

		licenses, total, err := h.licenseService.ListLicenses(r.Context(), productID, status, page, pageSize)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     licenses,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// DeleteLicense godoc
//
//	@Summary		Delete a license key
//	@Description	Only keys that are still available can be removed.
//	@Tags			Admin Licenses
//	@Produce		json
//	@Param			id	path		string						true	"License ID"
//	@Success		200	{object}	response.SuccessResponse	"Deleted"
//	@Failure		404	{object}	response.ErrorResponse		"License not found or already reserved"
//	@Security		BearerAuth
//	@Router			/admin/licenses/{id} [delete]
func (h *LicenseHandler) DeleteLicense() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.licenseService.DeleteLicense(r.Context(), id); err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, response.SuccessResponse{Success: true})
	}
}
