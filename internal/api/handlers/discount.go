package handlers

import (
	"log/slog"
	"net/http"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/models"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils"
	"github.com/geekfaka/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type DiscountHandler struct {
	discountService service.DiscountService
	validator       *validator.Validate
}

func NewDiscountHandler(discountService service.DiscountService) *DiscountHandler {
	return &DiscountHandler{discountService: discountService, validator: utils.NewValidator()}
}

// ListDiscounts godoc
//
//	@Summary	List discounts
//	@Tags		Admin Discounts
//	@Produce	json
//	@Success	200	{array}		models.Discount			"Discounts with their product counts"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	500	{object}	response.ErrorResponse	"Internal server error"
//	@Security	BearerAuth
//	@Router		/admin/discounts [get]
func (h *DiscountHandler) ListDiscounts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		discounts, err := h.discountService.ListDiscounts(r.Context())
		if err != nil {
			logger.Error("Failed to list discounts", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, discounts)
	}
}

// GetDiscount godoc
//
//	@Summary	Get a discount with its member products
//	@Tags		Admin Discounts
//	@Produce	json
//	@Param		id	path		string					true	"Discount ID"
//	@Success	200	{object}	models.Discount			"Discount"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Discount not found"
//	@Security	BearerAuth
//	@Router		/admin/discounts/{id} [get]
func (h *DiscountHandler) GetDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		discount, err := h.discountService.GetDiscount(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, discount)
	}
}

// CreateDiscount godoc
//
//	@Summary		Create a discount
//	@Description	Creates the discount and attaches the listed products in one transaction. A bare endDate covers the whole day.
//	@Tags			Admin Discounts
//	@Accept			json
//	@Produce		json
//	@Param			discount	body		models.CreateDiscountRequest	true	"Discount details"
//	@Success		201			{object}	models.Discount					"Discount created"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error or unknown product"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Security		BearerAuth
//	@Router			/admin/discounts [post]
func (h *DiscountHandler) CreateDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateDiscountRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create discount input")
			return
		}

		discount, err := h.discountService.CreateDiscount(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create discount", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Discount created", slog.String("discountId", discount.ID), slog.Int("products", discount.ProductCount))
		response.Success(w, http.StatusCreated, discount)
	}
}

// UpdateDiscount godoc
//
//	@Summary		Update a discount
//	@Description	A supplied productIds list replaces membership entirely; omit it to keep the current products.
//	@Tags			Admin Discounts
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Discount ID"
//	@Param			discount	body		models.UpdateDiscountRequest	true	"Fields to change"
//	@Success		200			{object}	models.Discount					"Discount updated"
//	@Failure		400			{object}	response.ErrorResponse			"Validation error or unknown product"
//	@Failure		401			{object}	response.ErrorResponse			"Authentication required"
//	@Failure		404			{object}	response.ErrorResponse			"Discount not found"
//	@Security		BearerAuth
//	@Router			/admin/discounts/{id} [patch]
func (h *DiscountHandler) UpdateDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateDiscountRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		discount, err := h.discountService.UpdateDiscount(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update discount", slog.String("discountId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, discount)
	}
}

// DeleteDiscount godoc
//
//	@Summary		Delete a discount
//	@Description	Member products keep existing and lose the discount.
//	@Tags			Admin Discounts
//	@Produce		json
//	@Param			id	path		string						true	"Discount ID"
//	@Success		200	{object}	response.SuccessResponse	"Deleted"
//	@Failure		401	{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse		"Discount not found"
//	@Security		BearerAuth
//	@Router			/admin/discounts/{id} [delete]
func (h *DiscountHandler) DeleteDiscount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.discountService.DeleteDiscount(r.Context(), id); err != nil {
			logger.Error("Failed to delete discount", slog.String("discountId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Discount deleted", slog.String("discountId", id))
		response.Success(w, http.StatusOK, response.SuccessResponse{Success: true})
	}
}
