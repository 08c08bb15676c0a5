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

type CouponHandler struct {
	couponService service.CouponService
	validator     *validator.Validate
}

func NewCouponHandler(couponService service.CouponService) *CouponHandler {
	return &CouponHandler{couponService: couponService, validator: utils.NewValidator()}
}

// ValidateCoupon godoc
//
//	@Summary		Check a coupon code against a product
//	@Description	Reports whether the code can be used on the product right now. Nothing is redeemed.
//	@Tags			Coupons
//	@Accept			json
//	@Produce		json
//	@Param			coupon	body		models.ValidateCouponRequest	true	"Code and product"
//	@Success		200		{object}	models.CouponAcceptance			"Coupon accepted"
//	@Failure		400		{object}	response.ErrorResponse			"Missing code, not yet valid, expired, already used or out of scope"
//	@Failure		404		{object}	response.ErrorResponse			"Unknown code"
//	@Failure		500		{object}	response.ErrorResponse			"Validation failed"
//	@Router			/coupons/validate [post]
func (h *CouponHandler) ValidateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.ValidateCouponRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()))
			return
		}

		acceptance, err := h.couponService.ValidateCoupon(r.Context(), req.Code, req.ProductID)
		if err != nil {
			logger.Info("Coupon rejected", slog.String("productId", req.ProductID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, acceptance)
	}
}

// ListCoupons godoc
//
//	@Summary	List coupons
//	@Tags		Admin Coupons
//	@Produce	json
//	@Param		page		query		int												false	"Page number (default: 1)"				minimum(1)
//	@Param		pageSize	query		int												false	"Items per page (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.Coupon}	"Coupons"
//	@Failure	401			{object}	response.ErrorResponse							"Authentication required"
//	@Failure	500			{object}	response.ErrorResponse							"Internal server error"
//	@Security	BearerAuth
//	@Router		/admin/coupons [get]
func (h *CouponHandler) ListCoupons() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		page, pageSize := utils.ParsePagination(r)

		coupons, total, err := h.couponService.ListCoupons(r.Context(), page, pageSize)
		if err != nil {
			logger.Error("Failed to list coupons", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     coupons,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// GetCoupon godoc
//
//	@Summary	Get a coupon
//	@Tags		Admin Coupons
//	@Produce	json
//	@Param		id	path		string					true	"Coupon ID"
//	@Success	200	{object}	models.Coupon			"Coupon"
//	@Failure	401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse	"Coupon not found"
//	@Security	BearerAuth
//	@Router		/admin/coupons/{id} [get]
func (h *CouponHandler) GetCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		coupon, err := h.couponService.GetCoupon(r.Context(), id)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, coupon)
	}
}

// CreateCoupon godoc
//
//	@Summary		Create a coupon
//	@Description	Codes are stored trimmed and upper-cased. Dates accept RFC3339 or YYYY-MM-DD.
//	@Tags			Admin Coupons
//	@Accept			json
//	@Produce		json
//	@Param			coupon	body		models.CreateCouponRequest	true	"Coupon details"
//	@Success		201		{object}	models.Coupon				"Coupon created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		409		{object}	response.ErrorResponse		"Code already exists"
//	@Security		BearerAuth
//	@Router			/admin/coupons [post]
func (h *CouponHandler) CreateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create coupon input")
			return
		}

		coupon, err := h.couponService.CreateCoupon(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create coupon", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Coupon created", slog.String("couponId", coupon.ID), slog.String("code", coupon.Code))
		response.Success(w, http.StatusCreated, coupon)
	}
}

// UpdateCoupon godoc
//
//	@Summary		Update a coupon
//	@Description	Only supplied fields change. An empty productId or categoryId removes that scope.
//	@Tags			Admin Coupons
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Coupon ID"
//	@Param			coupon	body		models.UpdateCouponRequest	true	"Fields to change"
//	@Success		200		{object}	models.Coupon				"Coupon updated"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse		"Coupon not found"
//	@Security		BearerAuth
//	@Router			/admin/coupons/{id} [patch]
func (h *CouponHandler) UpdateCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		var req models.UpdateCouponRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		coupon, err := h.couponService.UpdateCoupon(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update coupon", slog.String("couponId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, coupon)
	}
}

// DeleteCoupon godoc
//
//	@Summary	Delete a coupon
//	@Tags		Admin Coupons
//	@Produce	json
//	@Param		id	path		string						true	"Coupon ID"
//	@Success	200	{object}	response.SuccessResponse	"Deleted"
//	@Failure	401	{object}	response.ErrorResponse		"Authentication required"
//	@Failure	404	{object}	response.ErrorResponse		"Coupon not found"
//	@Security	BearerAuth
//	@Router		/admin/coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		if err := h.couponService.DeleteCoupon(r.Context(), id); err != nil {
			logger.Error("Failed to delete coupon", slog.String("couponId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Coupon deleted", slog.String("couponId", id))
		response.Success(w, http.StatusOK, response.SuccessResponse{Success: true})
	}
}
