package gateway

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
	natspkg "github.com/urbandrive/urbandrive/internal/pkg/nats"
	"github.com/urbandrive/urbandrive/services/payment"
)

// PaymentGW bundles the hosted page, card-element and event gateways
// behind the payment.PaymentGW interface.
type PaymentGW struct {
	hostedPage *HostedPageGateway
	stripe     *StripeGateway
	nats       *NATSGateway
}

// NewPaymentGW creates a unified gateway instance
func NewPaymentGW(paymentCfg *models.PaymentConfig, stripeCfg *models.StripeConfig, natsClient *natspkg.Client) payment.PaymentGW {
	return &PaymentGW{
		hostedPage: NewHostedPageGateway(paymentCfg),
		stripe:     NewStripeGateway(stripeCfg.SecretKey),
		nats:       NewNATSGateway(natsClient),
	}
}

func (g *PaymentGW) InitiateHostedPayment(ctx context.Context, txn *models.Transaction) (string, error) {
	return g.hostedPage.InitiateHostedPayment(ctx, txn)
}

func (g *PaymentGW) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	return g.stripe.CreatePaymentIntent(ctx, amountMinor, currency)
}

func (g *PaymentGW) PublishPaymentReconciled(ctx context.Context, event models.PaymentReconciledEvent) error {
	return g.nats.PublishPaymentReconciled(ctx, event)
}
