package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/geekfaka/storefront/internal/api/middleware"
	"github.com/geekfaka/storefront/internal/cache"
	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/metrics"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/geekfaka/storefront/pkg/sendgrid"
	"github.com/geekfaka/storefront/pkg/stripe"
)

type OrderService interface {
	// CreateOrder reserves a license and redeems the coupon atomically, then
	// either settles a free order immediately or opens a Stripe payment.
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CheckoutResponse, error)
	// GetOrder is the buyer's lookup; the email must match the order.
	GetOrder(ctx context.Context, id, email string) (*models.Order, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
	ListOrders(ctx context.Context, status models.OrderStatus, page, pageSize int) ([]*models.Order, int, error)
	CancelOrder(ctx context.Context, id string) (*models.Order, error)
	// DeliverOrder mails the key of a PAID order, or mails it again for a
	// DELIVERED one.
	DeliverOrder(ctx context.Context, id string) (*models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	pricing     PricingService
	payments    stripe.Client
	mailer      sendgrid.EmailService
	cache       cache.Cache
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	pricing PricingService,
	payments stripe.Client,
	mailer sendgrid.EmailService,
	c cache.Cache,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		pricing:     pricing,
		payments:    payments,
		mailer:      mailer,
		cache:       c,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.CheckoutResponse, error) {

	logger := middleware.LoggerFromContext(ctx)

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, storeError(ctx, err, "Product")
	}

	if !product.IsActive {
		return nil, appErrors.NotFoundError("Product not found")
	}

	quote, err := s.pricing.Quote(ctx, product, req.CouponCode)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ProductID:     product.ID,
		Email:         strings.TrimSpace(req.Email),
		OriginalPrice: quote.OriginalPrice,
		FinalPrice:    quote.FinalPrice,
		Status:        models.OrderStatusPending,
	}

	if quote.Coupon != nil {
		order.CouponID = &quote.Coupon.ID
	}

	if err := s.orderRepo.Checkout(ctx, order); err != nil {
		switch {
		case errors.Is(err, repository.ErrOutOfStock):
			return nil, appErrors.OutOfStockError().WithError(err)
		case errors.Is(err, repository.ErrCouponAlreadyUsed):
			return nil, appErrors.CouponAlreadyUsedError().WithError(err)
		}

		return nil, storeError(ctx, err, "Order")
	}

	s.invalidateCatalog(ctx)
	metrics.OrdersCreated.Inc()

	logger = logger.With(slog.String("order_id", order.ID))
	logger.Info("Order created", slog.String("product_id", order.ProductID), slog.String("final_price", order.FinalPrice.String()))

	if order.FinalPrice.IsZero() {
		if err := s.orderRepo.MarkPaid(ctx, order.ID); err != nil {
			return nil, storeError(ctx, err, "Order")
		}

		delivered, err := s.deliver(ctx, order.ID)
		if err != nil {
			logger.Error("Free order paid but not delivered", slog.String("error", err.Error()))
		}

		if delivered != nil {
			order = delivered
		}

		return &models.CheckoutResponse{Order: order}, nil
	}

	intent, err := s.payments.CreatePaymentIntent(ctx, order.FinalPrice, "Order "+order.ID, order.Email,
		map[string]string{"order_id": order.ID})
	if err != nil {
		logger.Error("Failed to create payment intent", slog.String("error", err.Error()))

		if cancelErr := s.orderRepo.CancelOrder(ctx, order.ID); cancelErr != nil {
			logger.Error("Failed to release order after payment error", slog.String("error", cancelErr.Error()))
		}
		s.invalidateCatalog(ctx)

		return nil, appErrors.ThirdPartyError("Failed to create payment intent").WithError(err)
	}

	if err := s.orderRepo.SetPaymentIntent(ctx, order.ID, intent.ID); err != nil {
		if cancelErr := s.orderRepo.CancelOrder(ctx, order.ID); cancelErr != nil {
			logger.Error("Failed to release order after payment error", slog.String("error", cancelErr.Error()))
		}
		if cancelErr := s.payments.CancelPaymentIntent(ctx, intent.ID); cancelErr != nil {
			logger.Error("Failed to cancel payment intent", slog.String("error", cancelErr.Error()))
		}
		s.invalidateCatalog(ctx)

		return nil, storeError(ctx, err, "Order")
	}

	order.PaymentIntentID = &intent.ID

	return &models.CheckoutResponse{Order: order, ClientSecret: intent.ClientSecret}, nil
}

func (s *orderService) GetOrder(ctx context.Context, id, email string) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Order")
	}

	// A wrong email looks exactly like a missing order.
	if !strings.EqualFold(strings.TrimSpace(email), order.Email) {
		return nil, appErrors.NotFoundError("Order not found")
	}

	if order.Status != models.OrderStatusDelivered {
		order.LicenseKey = ""
	}

	return order, nil
}

// HandleWebhook acknowledges events it cannot act on so Stripe stops
// retrying them; only storage failures are returned for a retry.
func (s *orderService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {

	logger := middleware.LoggerFromContext(ctx)

	event, err := s.payments.VerifyWebhookSignature(payload, signature)
	if err != nil {
		logger.Warn("Webhook signature verification failed", slog.String("error", err.Error()))
		return appErrors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	logger = logger.With(slog.String("event_id", event.ID), slog.String("event_type", string(event.Type)))
	ctx = middleware.WithLogger(ctx, logger)

	switch event.Type {
	case "payment_intent.succeeded":
		order, err := s.orderForEvent(ctx, event)
		if order == nil || err != nil {
			return err
		}

		if err := s.orderRepo.MarkPaid(ctx, order.ID); err != nil {
			if errors.Is(err, repository.ErrInvalidTransition) {
				logger.Info("Payment already recorded", slog.String("order_id", order.ID))
				return nil
			}

			return storeError(ctx, err, "Order")
		}

		if _, err := s.deliver(ctx, order.ID); err != nil {
			logger.Error("Order paid but not delivered", slog.String("order_id", order.ID), slog.String("error", err.Error()))
		}

	case "payment_intent.payment_failed", "payment_intent.canceled":
		order, err := s.orderForEvent(ctx, event)
		if order == nil || err != nil {
			return err
		}

		if err := s.orderRepo.CancelOrder(ctx, order.ID); err != nil {
			if errors.Is(err, repository.ErrInvalidTransition) {
				logger.Info("Order no longer pending", slog.String("order_id", order.ID))
				return nil
			}

			return storeError(ctx, err, "Order")
		}

		s.invalidateCatalog(ctx)
		logger.Info("Order cancelled after failed payment", slog.String("order_id", order.ID))

	default:
		logger.Debug("Ignoring webhook event")
	}

	return nil
}

// orderForEvent returns (nil, nil) for events that do not belong to a known order.
func (s *orderService) orderForEvent(ctx context.Context, event stripe.Event) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	intentID, _ := event.Data.Object["id"].(string)
	if intentID == "" {
		logger.Warn("Webhook event without payment intent id")
		return nil, nil
	}

	order, err := s.orderRepo.GetOrderByPaymentIntent(ctx, intentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Webhook for unknown payment intent", slog.String("payment_intent_id", intentID))
			return nil, nil
		}

		return nil, storeError(ctx, err, "Order")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, status models.OrderStatus, page, pageSize int) ([]*models.Order, int, error) {

	orders, total, err := s.orderRepo.ListOrders(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, storeError(ctx, err, "Order")
	}

	return orders, total, nil
}

func (s *orderService) CancelOrder(ctx context.Context, id string) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Order")
	}

	if err := s.orderRepo.CancelOrder(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInvalidTransition) {
			return nil, appErrors.BadRequestError("Only pending orders can be cancelled").WithError(err)
		}

		return nil, storeError(ctx, err, "Order")
	}

	if order.PaymentIntentID != nil {
		if err := s.payments.CancelPaymentIntent(ctx, *order.PaymentIntentID); err != nil {
			logger.Warn("Failed to cancel payment intent", slog.String("order_id", id), slog.String("error", err.Error()))
		}
	}

	s.invalidateCatalog(ctx)

	order.Status = models.OrderStatusCancelled
	order.LicenseID = nil
	order.LicenseKey = ""

	return order, nil
}

func (s *orderService) DeliverOrder(ctx context.Context, id string) (*models.Order, error) {

	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, storeError(ctx, err, "Order")
	}

	if order.Status != models.OrderStatusPaid && order.Status != models.OrderStatusDelivered {
		return nil, appErrors.BadRequestError("Only paid orders can be delivered")
	}

	delivered, err := s.deliver(ctx, id)
	if err != nil {
		if _, ok := appErrors.IsAppError(err); ok {
			return nil, err
		}

		return nil, appErrors.ThirdPartyError("Failed to send license email").WithError(err)
	}

	return delivered, nil
}

// deliver mails the license key and moves a PAID order to DELIVERED. On a
// mail failure the order stays PAID and is returned together with the error.
func (s *orderService) deliver(ctx context.Context, orderID string) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("order_id", orderID))

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, storeError(ctx, err, "Order")
	}

	if order.LicenseKey == "" {
		metrics.LicensesDelivered.WithLabelValues("failed").Inc()
		return order, appErrors.InternalError("Order has no license key")
	}

	productName := order.ProductID
	if product, err := s.productRepo.GetProductByID(ctx, order.ProductID); err == nil {
		productName = product.Name
	}

	if err := s.mailer.Send(ctx, licenseEmail(order, productName)); err != nil {
		metrics.LicensesDelivered.WithLabelValues("failed").Inc()
		logger.Error("Failed to send license email", slog.String("error", err.Error()))
		return order, err
	}

	metrics.LicensesDelivered.WithLabelValues("sent").Inc()

	if order.Status == models.OrderStatusPaid {
		if err := s.orderRepo.MarkDelivered(ctx, order.ID); err != nil {
			return order, storeError(ctx, err, "Order")
		}

		order.Status = models.OrderStatusDelivered
	}

	logger.Info("License delivered")

	return order, nil
}

func licenseEmail(order *models.Order, productName string) *models.EmailRequest {
	return &models.EmailRequest{
		To:         order.Email,
		Subject:    fmt.Sprintf("您购买的「%s」卡密", productName),
		OrderID:    order.ID,
		Categories: []string{models.EmailCategoryLicenseDelivery},
		Content:    fmt.Sprintf("订单号: %s\n商品: %s\n卡密: %s\n", order.ID, productName, order.LicenseKey),
		HTMLContent: fmt.Sprintf("<p>订单号: %s</p><p>商品: %s</p><p>卡密: <code>%s</code></p>",
			html.EscapeString(order.ID), html.EscapeString(productName), html.EscapeString(order.LicenseKey)),
	}
}

func (s *orderService) invalidateCatalog(ctx context.Context) {
	cache.Invalidate(ctx, s.cache, middleware.LoggerFromContext(ctx), cache.CatalogKey)
}
