package stripe

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

type CheckoutSession = stripe.CheckoutSession

// CheckoutSessionRequest describes a single line item hosted checkout.
type CheckoutSessionRequest struct {
	Name               string
	Description        string
	Image              string
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
	SuccessURL         string
	CancelURL          string
	CustomerEmail      string
	Metadata           map[string]string
}

// defines the methods that any of payment client must implement.
type Client interface {
	CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
	Ping(ctx context.Context) error
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

// CreateCheckoutSession implements Client.
func (s *stripeClient) CreateCheckoutSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error) {
	return session.New(newCheckoutSessionParams(ctx, req))
}

// VerifyWebhookSignature implements Client.
func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}

// Ping reads the account balance, the cheapest authenticated call.
func (s *stripeClient) Ping(ctx context.Context) error {
	params := &stripe.BalanceParams{
		Params: stripe.Params{
			Context: ctx,
		},
	}

	_, err := balance.Get(params)

	return err
}

func newCheckoutSessionParams(ctx context.Context, req *CheckoutSessionRequest) *stripe.CheckoutSessionParams {

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(req.Name),
	}

	if req.Description != "" {
		productData.Description = stripe.String(req.Description)
	}

	if req.Image != "" {
		productData.Images = stripe.StringSlice([]string{req.Image})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice(req.PaymentMethodTypes),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(req.Currency),
					ProductData: productData,
					UnitAmount:  stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}

	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}

	params.Context = ctx

	return params
}
