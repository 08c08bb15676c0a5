package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/errors"
	service "github.com/geekfaka/storefront/internal/services"
	"github.com/geekfaka/storefront/internal/utils/response"
)

// Stripe never sends webhook bodies larger than this.
const maxWebhookBytes = 65536

type PaymentHandler struct {
	orderService service.OrderService
}

func NewPaymentHandler(orderService service.OrderService) *PaymentHandler {
	return &PaymentHandler{orderService: orderService}
}

// HandleStripeWebhook godoc
//
//	@Summary		Stripe webhook
//	@Description	Settles or cancels orders from payment intent events. Unknown and repeated events are acknowledged.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string						true	"Stripe signature"
//	@Success		200					{object}	response.SuccessResponse	"Event acknowledged"
//	@Failure		400					{object}	response.ErrorResponse		"Missing or invalid signature"
//	@Failure		500					{object}	response.ErrorResponse		"Event could not be applied"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		// read the payload/body
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))
			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe Signature is required"))
			return
		}

		if err := h.orderService.HandleWebhook(r.Context(), payload, signature); err != nil {
			logger.Error("Failed to process payment webhook", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, response.SuccessResponse{Success: true})
	}
}
