package payment

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// PaymentUC defines the interface for payment use cases
type PaymentUC interface {
	// InitiatePayment starts a hosted-payment-page flow: validates the
	// request, contacts the provider, persists a Pending transaction and
	// returns the redirect URL.
	InitiatePayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error)
	// ReconcileSuccess applies a provider success callback and returns the
	// client-facing redirect target.
	ReconcileSuccess(ctx context.Context, callback *models.PaymentCallback) (string, error)
	// ReconcileFail applies a provider fail callback and returns the
	// client-facing redirect target.
	ReconcileFail(ctx context.Context, callback *models.PaymentCallback) (string, error)
	// ReconcileCancel applies a provider cancel callback and returns the
	// client-facing redirect target.
	ReconcileCancel(ctx context.Context, callback *models.PaymentCallback) (string, error)
	// CreateIntent issues a card-element client secret synchronously.
	CreateIntent(ctx context.Context, req *models.IntentRequest) (*models.IntentResponse, error)
	// RecordCharge persists a card-element charge the client confirmed in
	// the browser. The card path has no provider callback, so the record
	// is written terminal immediately.
	RecordCharge(ctx context.Context, req *models.PaymentRequest) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
	GetPaymentHistory(ctx context.Context, email string) ([]*models.Transaction, error)
	// ExpireStalePending fails Pending transactions older than the
	// configured window.
	ExpireStalePending(ctx context.Context) (int64, error)
}
