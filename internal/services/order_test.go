package service_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	appErrors "github.com/geekfaka/storefront/internal/errors"
	"github.com/geekfaka/storefront/internal/models"
	repository "github.com/geekfaka/storefront/internal/repositories"
	"github.com/geekfaka/storefront/internal/repositories/mocks"
	service "github.com/geekfaka/storefront/internal/services"
	serviceMocks "github.com/geekfaka/storefront/internal/services/mocks"
	sendgridMocks "github.com/geekfaka/storefront/pkg/sendgrid/mocks"
	stripe_client "github.com/geekfaka/storefront/pkg/stripe"
	stripeMocks "github.com/geekfaka/storefront/pkg/stripe/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"
)

type orderFixture struct {
	orderRepo   *mocks.OrderRepository
	productRepo *mocks.ProductRepository
	pricing     *serviceMocks.PricingService
	payments    *stripeMocks.Client
	mailer      *sendgridMocks.EmailService
	service     service.OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orderRepo:   new(mocks.OrderRepository),
		productRepo: new(mocks.ProductRepository),
		pricing:     new(serviceMocks.PricingService),
		payments:    new(stripeMocks.Client),
		mailer:      new(sendgridMocks.EmailService),
	}

	f.service = service.NewOrderService(f.orderRepo, f.productRepo, f.pricing, f.payments, f.mailer, nil)

	return f
}

func (f *orderFixture) assertExpectations(t *testing.T) {
	f.orderRepo.AssertExpectations(t)
	f.productRepo.AssertExpectations(t)
	f.pricing.AssertExpectations(t)
	f.payments.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func editor() *models.Product {
	return &models.Product{ID: "p1", Name: "Editor", Price: decimal.RequireFromString("19.99"), IsActive: true, EnableCoupons: true}
}

func TestCreateOrder(t *testing.T) {
	req := &models.CreateOrderRequest{ProductID: "p1", Email: " buyer@example.com ", CouponCode: "SAVE10"}

	t.Run("Success - Paid order opens a payment intent", func(t *testing.T) {
		f := newOrderFixture()
		coupon := &models.Coupon{ID: "c-1"}

		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.pricing.On("Quote", mock.Anything, mock.Anything, "SAVE10").Return(&models.Quote{
			OriginalPrice: decimal.RequireFromString("19.99"),
			FinalPrice:    decimal.RequireFromString("17.99"),
			Coupon:        coupon,
		}, nil).Once()
		f.orderRepo.On("Checkout", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
			return o.Email == "buyer@example.com" && *o.CouponID == "c-1" && o.Status == models.OrderStatusPending
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = "o-1"
		}).Return(nil).Once()
		f.payments.On("CreatePaymentIntent", mock.Anything, decimal.RequireFromString("17.99"), "Order o-1", "buyer@example.com",
			map[string]string{"order_id": "o-1"}).Return(&stripe.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil).Once()
		f.orderRepo.On("SetPaymentIntent", mock.Anything, "o-1", "pi_1").Return(nil).Once()

		resp, err := f.service.CreateOrder(t.Context(), req)

		require.NoError(t, err)
		assert.Equal(t, "pi_1_secret", resp.ClientSecret)
		assert.Equal(t, "pi_1", *resp.Order.PaymentIntentID)
		assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
		f.assertExpectations(t)
	})

	t.Run("Success - Free order is delivered immediately", func(t *testing.T) {
		f := newOrderFixture()

		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Twice()
		f.pricing.On("Quote", mock.Anything, mock.Anything, "").Return(&models.Quote{
			OriginalPrice: decimal.RequireFromString("19.99"),
			FinalPrice:    decimal.Zero,
		}, nil).Once()
		f.orderRepo.On("Checkout", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = "o-2"
		}).Return(nil).Once()
		f.orderRepo.On("MarkPaid", mock.Anything, "o-2").Return(nil).Once()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-2").Return(&models.Order{
			ID: "o-2", ProductID: "p1", Email: "buyer@example.com", Status: models.OrderStatusPaid, LicenseKey: "KEY-1",
		}, nil).Once()
		f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(e *models.EmailRequest) bool {
			return e.To == "buyer@example.com" && e.OrderID == "o-2" &&
				strings.Contains(e.Content, "KEY-1") && strings.Contains(e.Subject, "Editor")
		})).Return(nil).Once()
		f.orderRepo.On("MarkDelivered", mock.Anything, "o-2").Return(nil).Once()

		resp, err := f.service.CreateOrder(t.Context(), &models.CreateOrderRequest{ProductID: "p1", Email: "buyer@example.com"})

		require.NoError(t, err)
		assert.Empty(t, resp.ClientSecret)
		assert.Equal(t, models.OrderStatusDelivered, resp.Order.Status)
		f.payments.AssertNotCalled(t, "CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("Fail - Inactive product", func(t *testing.T) {
		f := newOrderFixture()
		p := editor()
		p.IsActive = false

		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(p, nil).Once()

		_, err := f.service.CreateOrder(t.Context(), req)

		assertAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound)
	})

	t.Run("Fail - Coupon rejected by pricing", func(t *testing.T) {
		f := newOrderFixture()

		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.pricing.On("Quote", mock.Anything, mock.Anything, "SAVE10").Return(nil, appErrors.CouponProductMismatchError()).Once()

		_, err := f.service.CreateOrder(t.Context(), req)

		assertAppError(t, err, appErrors.ErrCodeProductMismatch, http.StatusBadRequest)
		f.orderRepo.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything)
	})

	for _, tc := range []struct {
		name     string
		repoErr  error
		wantCode string
		status   int
	}{
		{"Fail - Out of stock", repository.ErrOutOfStock, appErrors.ErrCodeOutOfStock, http.StatusConflict},
		{"Fail - Coupon redeemed concurrently", repository.ErrCouponAlreadyUsed, appErrors.ErrCodeAlreadyUsed, http.StatusBadRequest},
		{"Fail - Database error", errors.New("db down"), appErrors.ErrCodeDatabaseError, http.StatusInternalServerError},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newOrderFixture()

			f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
			f.pricing.On("Quote", mock.Anything, mock.Anything, "SAVE10").Return(&models.Quote{
				OriginalPrice: decimal.NewFromInt(20), FinalPrice: decimal.NewFromInt(18), Coupon: &models.Coupon{ID: "c-1"},
			}, nil).Once()
			f.orderRepo.On("Checkout", mock.Anything, mock.Anything).Return(tc.repoErr).Once()

			_, err := f.service.CreateOrder(t.Context(), req)

			assertAppError(t, err, tc.wantCode, tc.status)
		})
	}

	t.Run("Fail - Stripe error releases the order", func(t *testing.T) {
		f := newOrderFixture()

		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.pricing.On("Quote", mock.Anything, mock.Anything, "SAVE10").Return(&models.Quote{
			OriginalPrice: decimal.NewFromInt(20), FinalPrice: decimal.NewFromInt(18),
		}, nil).Once()
		f.orderRepo.On("Checkout", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = "o-3"
		}).Return(nil).Once()
		f.payments.On("CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("stripe down")).Once()
		f.orderRepo.On("CancelOrder", mock.Anything, "o-3").Return(nil).Once()

		_, err := f.service.CreateOrder(t.Context(), req)

		assertAppError(t, err, appErrors.ErrCodeThirdPartyError, http.StatusBadGateway)
		f.assertExpectations(t)
	})

	t.Run("Fail - Payment intent not recorded releases the order", func(t *testing.T) {
		f := newOrderFixture()

		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.pricing.On("Quote", mock.Anything, mock.Anything, "SAVE10").Return(&models.Quote{
			OriginalPrice: decimal.NewFromInt(20), FinalPrice: decimal.NewFromInt(18), Coupon: &models.Coupon{ID: "c-1"},
		}, nil).Once()
		f.orderRepo.On("Checkout", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = "o-1"
		}).Return(nil).Once()
		f.payments.On("CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&stripe.PaymentIntent{ID: "pi_4", ClientSecret: "pi_4_secret"}, nil).Once()
		f.orderRepo.On("SetPaymentIntent", mock.Anything, "o-1", "pi_4").Return(errors.New("conn reset")).Once()
		f.orderRepo.On("CancelOrder", mock.Anything, "o-1").Return(nil).Once()
		f.payments.On("CancelPaymentIntent", mock.Anything, "pi_4").Return(nil).Once()

		resp, err := f.service.CreateOrder(t.Context(), req)

		assert.Nil(t, resp)
		assertAppError(t, err, appErrors.ErrCodeDatabaseError, http.StatusInternalServerError)
		f.assertExpectations(t)
	})

	t.Run("Fail - Payment intent not recorded, release failures are logged", func(t *testing.T) {
		f := newOrderFixture()

		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.pricing.On("Quote", mock.Anything, mock.Anything, "SAVE10").Return(&models.Quote{
			OriginalPrice: decimal.NewFromInt(20), FinalPrice: decimal.NewFromInt(18),
		}, nil).Once()
		f.orderRepo.On("Checkout", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Order).ID = "o-5"
		}).Return(nil).Once()
		f.payments.On("CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(&stripe.PaymentIntent{ID: "pi_5"}, nil).Once()
		f.orderRepo.On("SetPaymentIntent", mock.Anything, "o-5", "pi_5").Return(errors.New("conn reset")).Once()
		f.orderRepo.On("CancelOrder", mock.Anything, "o-5").Return(errors.New("conn reset")).Once()
		f.payments.On("CancelPaymentIntent", mock.Anything, "pi_5").Return(errors.New("stripe down")).Once()

		_, err := f.service.CreateOrder(t.Context(), req)

		assertAppError(t, err, appErrors.ErrCodeDatabaseError, http.StatusInternalServerError)
		f.assertExpectations(t)
	})
}

func TestGetOrder(t *testing.T) {
	order := func(status models.OrderStatus) *models.Order {
		return &models.Order{ID: "o-1", Email: "Buyer@Example.com", Status: status, LicenseKey: "KEY-1"}
	}

	t.Run("Success - Delivered order shows key, email is case-insensitive", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(order(models.OrderStatusDelivered), nil).Once()

		got, err := f.service.GetOrder(t.Context(), "o-1", "buyer@example.com")

		require.NoError(t, err)
		assert.Equal(t, "KEY-1", got.LicenseKey)
	})

	t.Run("Success - Pending order hides key", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(order(models.OrderStatusPending), nil).Once()

		got, err := f.service.GetOrder(t.Context(), "o-1", "buyer@example.com")

		require.NoError(t, err)
		assert.Empty(t, got.LicenseKey)
	})

	t.Run("Fail - Wrong email looks like a missing order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(order(models.OrderStatusDelivered), nil).Once()

		_, err := f.service.GetOrder(t.Context(), "o-1", "someone@else.com")

		assertAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound)
	})
}

func intentEvent(eventType, intentID string) stripe_client.Event {
	var event stripe_client.Event

	raw := fmt.Sprintf(`{"id":"evt_1","object":"event","type":%q,"data":{"object":{"id":%q}}}`, eventType, intentID)
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		panic(err)
	}

	return event
}

func TestHandleWebhook(t *testing.T) {
	payload := []byte(`{}`)
	paid := &models.Order{ID: "o-1", ProductID: "p1", Email: "buyer@example.com", Status: models.OrderStatusPaid, LicenseKey: "KEY-1"}

	t.Run("Fail - Bad signature", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "bad").Return(stripe_client.Event{}, errors.New("bad sig")).Once()

		err := f.service.HandleWebhook(t.Context(), payload, "bad")

		assertAppError(t, err, appErrors.ErrCodeBadRequest, http.StatusBadRequest)
	})

	t.Run("Success - Payment succeeded marks paid and delivers", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "sig").Return(intentEvent("payment_intent.succeeded", "pi_1"), nil).Once()
		f.orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_1").Return(&models.Order{ID: "o-1", Status: models.OrderStatusPending}, nil).Once()
		f.orderRepo.On("MarkPaid", mock.Anything, "o-1").Return(nil).Once()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(paid, nil).Once()
		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.mailer.On("Send", mock.Anything, mock.Anything).Return(nil).Once()
		f.orderRepo.On("MarkDelivered", mock.Anything, "o-1").Return(nil).Once()

		assert.NoError(t, f.service.HandleWebhook(t.Context(), payload, "sig"))
		f.assertExpectations(t)
	})

	t.Run("Success - Replayed event is acknowledged", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "sig").Return(intentEvent("payment_intent.succeeded", "pi_1"), nil).Once()
		f.orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_1").Return(&models.Order{ID: "o-1"}, nil).Once()
		f.orderRepo.On("MarkPaid", mock.Anything, "o-1").Return(repository.ErrInvalidTransition).Once()

		assert.NoError(t, f.service.HandleWebhook(t.Context(), payload, "sig"))
		f.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Success - Mail failure leaves order paid", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "sig").Return(intentEvent("payment_intent.succeeded", "pi_1"), nil).Once()
		f.orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_1").Return(&models.Order{ID: "o-1"}, nil).Once()
		f.orderRepo.On("MarkPaid", mock.Anything, "o-1").Return(nil).Once()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(paid, nil).Once()
		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid down")).Once()

		assert.NoError(t, f.service.HandleWebhook(t.Context(), payload, "sig"))
		f.orderRepo.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything)
	})

	t.Run("Success - Unknown intent is acknowledged", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "sig").Return(intentEvent("payment_intent.succeeded", "pi_x"), nil).Once()
		f.orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_x").Return(nil, repository.ErrNotFound).Once()

		assert.NoError(t, f.service.HandleWebhook(t.Context(), payload, "sig"))
	})

	t.Run("Success - Failed payment cancels the order", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "sig").Return(intentEvent("payment_intent.payment_failed", "pi_1"), nil).Once()
		f.orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_1").Return(&models.Order{ID: "o-1"}, nil).Once()
		f.orderRepo.On("CancelOrder", mock.Anything, "o-1").Return(nil).Once()

		assert.NoError(t, f.service.HandleWebhook(t.Context(), payload, "sig"))
		f.assertExpectations(t)
	})

	t.Run("Fail - Storage error asks Stripe to retry", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "sig").Return(intentEvent("payment_intent.canceled", "pi_1"), nil).Once()
		f.orderRepo.On("GetOrderByPaymentIntent", mock.Anything, "pi_1").Return(nil, errors.New("db down")).Once()

		err := f.service.HandleWebhook(t.Context(), payload, "sig")

		assertAppError(t, err, appErrors.ErrCodeDatabaseError, http.StatusInternalServerError)
	})

	t.Run("Success - Other events are ignored", func(t *testing.T) {
		f := newOrderFixture()
		f.payments.On("VerifyWebhookSignature", payload, "sig").Return(intentEvent("charge.refunded", "ch_1"), nil).Once()

		assert.NoError(t, f.service.HandleWebhook(t.Context(), payload, "sig"))
		f.assertExpectations(t)
	})
}

func TestAdminOrderActions(t *testing.T) {
	t.Run("Success - Cancel pending order and its payment intent", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(&models.Order{
			ID: "o-1", Status: models.OrderStatusPending, PaymentIntentID: ptr("pi_1"), LicenseID: ptr("l-1"),
		}, nil).Once()
		f.orderRepo.On("CancelOrder", mock.Anything, "o-1").Return(nil).Once()
		f.payments.On("CancelPaymentIntent", mock.Anything, "pi_1").Return(errors.New("already canceled")).Once()

		order, err := f.service.CancelOrder(t.Context(), "o-1")

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusCancelled, order.Status)
		assert.Nil(t, order.LicenseID)
		f.assertExpectations(t)
	})

	t.Run("Fail - Cancel a paid order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(&models.Order{ID: "o-1", Status: models.OrderStatusPaid}, nil).Once()
		f.orderRepo.On("CancelOrder", mock.Anything, "o-1").Return(repository.ErrInvalidTransition).Once()

		_, err := f.service.CancelOrder(t.Context(), "o-1")

		assertAppError(t, err, appErrors.ErrCodeBadRequest, http.StatusBadRequest)
	})

	t.Run("Success - Resend a delivered order", func(t *testing.T) {
		f := newOrderFixture()
		delivered := &models.Order{ID: "o-1", ProductID: "p1", Email: "buyer@example.com", Status: models.OrderStatusDelivered, LicenseKey: "KEY-1"}
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(delivered, nil).Twice()
		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(nil, repository.ErrNotFound).Once()
		f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(e *models.EmailRequest) bool {
			return strings.Contains(e.Subject, "p1")
		})).Return(nil).Once()

		order, err := f.service.DeliverOrder(t.Context(), "o-1")

		require.NoError(t, err)
		assert.Equal(t, models.OrderStatusDelivered, order.Status)
		f.orderRepo.AssertNotCalled(t, "MarkDelivered", mock.Anything, mock.Anything)
	})

	t.Run("Fail - Deliver a pending order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(&models.Order{ID: "o-1", Status: models.OrderStatusPending}, nil).Once()

		_, err := f.service.DeliverOrder(t.Context(), "o-1")

		assertAppError(t, err, appErrors.ErrCodeBadRequest, http.StatusBadRequest)
	})

	t.Run("Fail - Mail provider down", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetOrderByID", mock.Anything, "o-1").Return(&models.Order{
			ID: "o-1", ProductID: "p1", Status: models.OrderStatusPaid, LicenseKey: "KEY-1",
		}, nil).Twice()
		f.productRepo.On("GetProductByID", mock.Anything, "p1").Return(editor(), nil).Once()
		f.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("sendgrid down")).Once()

		_, err := f.service.DeliverOrder(t.Context(), "o-1")

		assertAppError(t, err, appErrors.ErrCodeThirdPartyError, http.StatusBadGateway)
	})

	t.Run("Success - List orders", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("ListOrders", mock.Anything, models.OrderStatusPaid, 1, 20).Return([]*models.Order{{ID: "o-1"}}, 1, nil).Once()

		orders, total, err := f.service.ListOrders(t.Context(), models.OrderStatusPaid, 1, 20)

		require.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, 1, total)
	})
}
