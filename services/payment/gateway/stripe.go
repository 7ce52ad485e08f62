package gateway

import (
	"context"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
)

// StripeGateway issues card-element payment intents.
type StripeGateway struct {
	cl *client.API
}

// NewStripeGateway creates a Stripe gateway from the secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	cl := &client.API{}
	cl.Init(secretKey, nil)
	return &StripeGateway{cl: cl}
}

// CreatePaymentIntent requests a payment intent with automatic payment
// method selection and returns its client secret verbatim.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	intent, err := g.cl.PaymentIntents.New(params)
	if err != nil {
		return "", apperrors.Gateway("failed to create payment intent", err)
	}

	return intent.ClientSecret, nil
}
