package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils"
	"github.com/geekfaka/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: utils.NewValidator()}
}

// CreateOrder godoc
//
//	@Summary		Buy one license key
//	@Description	Reserves a key and redeems the coupon, then opens a Stripe payment. Free orders are settled and mailed at once.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Product, buyer email and optional coupon"
//	@Success		201		{object}	models.CheckoutResponse		"Order created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error or coupon rejected"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found or coupon unknown"
//	@Failure		409		{object}	response.ErrorResponse		"Out of stock"
//	@Failure		502		{object}	response.ErrorResponse		"Payment provider unavailable"
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		// Decode the request body, validate
		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")
			return
		}

		logger = logger.With(slog.String("productId", req.ProductID))

		checkout, err := h.orderService.CreateOrder(r.Context(), &req)
		if err != nil {
			logger.Warn("Failed to create order", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order created successfully",
			slog.String("orderId", checkout.Order.ID),
			slog.String("status", string(checkout.Order.Status)))
		response.Success(w, http.StatusCreated, checkout)
	}
}

// GetOrder godoc
//
//	@Summary		Look up an order
//	@Description	The email must match the one used at checkout. The license key is included once delivered.
//	@Tags			Orders
//	@Produce		json
//	@Param			id		path		string					true	"Order ID"
//	@Param			email	query		string					true	"Buyer email"
//	@Success		200		{object}	models.Order			"Order"
//	@Failure		400		{object}	response.ErrorResponse	"Email missing"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		email := strings.TrimSpace(r.URL.Query().Get("email"))
		if email == "" {
			response.Error(w, errors.BadRequestError("Email is required"))
			return
		}

		order, err := h.orderService.GetOrder(r.Context(), id, email)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//
//	@Summary	List orders
//	@Tags		Admin Orders
//	@Produce	json
//	@Param		status		query		string											false	"Filter by status"	Enums(PENDING, PAID, DELIVERED, CANCELLED)
//	@Param		page		query		int												false	"Page number (default: 1)"				minimum(1)
//	@Param		pageSize	query		int												false	"Items per page (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success	200			{object}	models.PaginatedResponse{Data=[]models.Order}	"Orders"
//	@Failure	400			{object}	response.ErrorResponse							"Unknown status"
//	@Failure	401			{object}	response.ErrorResponse							"Authentication required"
//	@Security	BearerAuth
//	@Router		/admin/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		status := models.OrderStatus(r.URL.Query().Get("status"))
		switch status {
		case "", models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusDelivered, models.OrderStatusCancelled:
		default:
			response.Error(w, errors.AddValidationError("status", "must be one of PENDING, PAID, DELIVERED, CANCELLED"))
			return
		}

		page, pageSize := utils.ParsePagination(r)

		orders, total, err := h.orderService.ListOrders(r.Context(), status, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     orders,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

// CancelOrder godoc
//
//	@Summary		Cancel a pending order
//	@Description	Releases the reserved key and the coupon, and cancels the payment intent.
//	@Tags			Admin Orders
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.Order			"Order cancelled"
//	@Failure		400	{object}	response.ErrorResponse	"Order is not pending"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.CancelOrder(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to cancel order", slog.String("orderId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order cancelled", slog.String("orderId", id))
		response.Success(w, http.StatusOK, order)
	}
}

// DeliverOrder godoc
//
//	@Summary		Mail the license key of a paid order
//	@Description	Also resends the key of an order that was already delivered.
//	@Tags			Admin Orders
//	@Produce		json
//	@Param			id	path		string					true	"Order ID"
//	@Success		200	{object}	models.Order			"Order delivered"
//	@Failure		400	{object}	response.ErrorResponse	"Order is not paid"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Failure		502	{object}	response.ErrorResponse	"Email provider failed"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/deliver [post]
func (h *OrderHandler) DeliverOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.PathID(r, "id")
		if err != nil {
			response.Error(w, err)
			return
		}

		order, err := h.orderService.DeliverOrder(r.Context(), id)
		if err != nil {
			logger.Error("Failed to deliver order", slog.String("orderId", id), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger.Info("Order delivered", slog.String("orderId", id))
		response.Success(w, http.StatusOK, order)
	}
}
