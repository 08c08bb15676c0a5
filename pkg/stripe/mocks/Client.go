package mocks

import (
	"context"

	stripe_client "github.com/geekfaka/storefront/pkg/stripe"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

type Client struct {
	mock.Mock
}

func (m *Client) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, description, receiptEmail string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, amount, description, receiptEmail, metadata)

	var pi *stripe.PaymentIntent
	if v := args.Get(0); v != nil {
		pi = v.(*stripe.PaymentIntent)
	}

	return pi, args.Error(1)
}

func (m *Client) CancelPaymentIntent(ctx context.Context, paymentIntentID string) error {
	return m.Called(ctx, paymentIntentID).Error(0)
}

func (m *Client) VerifyWebhookSignature(payload []byte, signature string) (stripe_client.Event, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(stripe_client.Event), args.Error(1)
}
