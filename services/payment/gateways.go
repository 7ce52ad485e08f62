package payment

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// PaymentGW defines the payment gateway interface
type PaymentGW interface {
	// InitiateHostedPayment submits the initiation payload to the hosted
	// payment page provider and returns the redirect URL.
	InitiateHostedPayment(ctx context.Context, txn *models.Transaction) (string, error)
	// CreatePaymentIntent requests a card-element client secret for the
	// given minor-unit amount.
	CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
	// PublishPaymentReconciled publishes a terminal-transition event.
	PublishPaymentReconciled(ctx context.Context, event models.PaymentReconciledEvent) error
}
