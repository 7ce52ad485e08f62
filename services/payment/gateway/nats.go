package gateway

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/constants"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	natspkg "github.com/urbandrive/urbandrive/internal/pkg/nats"
)

// NATSGateway publishes payment lifecycle events.
type NATSGateway struct {
	producer *natspkg.Producer
}

// NewNATSGateway creates a NATS gateway instance
func NewNATSGateway(client *natspkg.Client) *NATSGateway {
	return &NATSGateway{producer: natspkg.NewProducer(client)}
}

// PublishPaymentReconciled publishes a terminal-transition event. The
// event is advisory; a publish failure is logged but never blocks a
// callback acknowledgement.
func (g *NATSGateway) PublishPaymentReconciled(ctx context.Context, event models.PaymentReconciledEvent) error {
	logger.Info("Publishing payment reconciled event",
		logger.String("transaction_id", event.TransactionID),
		logger.String("status", string(event.Status)))

	return g.producer.Publish(constants.SubjectPaymentReconciled, event)
}
