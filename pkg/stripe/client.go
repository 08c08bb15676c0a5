package stripe

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

// Client is the subset of the Stripe API the checkout flow needs.
type Client interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, description, receiptEmail string, metadata map[string]string) (*stripe.PaymentIntent, error)
	CancelPaymentIntent(ctx context.Context, paymentIntentID string) error
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	api           *client.API
	currency      string
	webhookSecret string
}

func NewStripeClient(apiKey, webhookSecret, currency string) Client {
	return &stripeClient{
		api:           client.New(apiKey, nil),
		currency:      currency,
		webhookSecret: webhookSecret,
	}
}

// NewStripeClientWithURL points every API call at baseURL; used against test servers.
func NewStripeClientWithURL(apiKey, webhookSecret, currency, baseURL string) Client {
	backends := stripe.NewBackendsWithConfig(&stripe.BackendConfig{
		URL:               stripe.String(baseURL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	return &stripeClient{
		api:           client.New(apiKey, backends),
		currency:      currency,
		webhookSecret: webhookSecret,
	}
}

// ToMinorUnits converts a two-decimal price into the integer amount Stripe
// expects. Zero-decimal currencies are refused by config.LoadConfigFromPath.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func (s *stripeClient) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, description, receiptEmail string, metadata map[string]string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(ToMinorUnits(amount)),
		Currency:     stripe.String(s.currency),
		Description:  stripe.String(description),
		ReceiptEmail: stripe.String(receiptEmail),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	return s.api.PaymentIntents.New(params)
}

func (s *stripeClient) CancelPaymentIntent(ctx context.Context, paymentIntentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx

	_, err := s.api.PaymentIntents.Cancel(paymentIntentID, params)

	return err
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
}
