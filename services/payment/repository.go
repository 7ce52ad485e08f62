package payment

import (
	"context"
	"time"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction store operations
type TransactionRepo interface {
	// CreateTransaction persists a new Pending transaction.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error
	// MarkTerminal conditionally transitions a Pending transaction to the
	// given terminal status, attaching provider metadata. It returns false
	// when no Pending row matched (already terminal or unknown id).
	MarkTerminal(ctx context.Context, transactionID string, status models.TransactionStatus, tranDate, cardType string) (bool, error)
	GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
	ListTransactionsByEmail(ctx context.Context, email string) ([]*models.Transaction, error)
	// ExpireStalePending fails Pending transactions older than the cutoff
	// and returns how many rows were transitioned.
	ExpireStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
	// MarkBookingPaid marks the booking paid and queues it for host review.
	// Re-applying it to an already-paid booking is a no-op.
	MarkBookingPaid(ctx context.Context, bookingID string) error
	// ActivateMembership records an active enrollment keyed by transaction
	// id; replays do not create duplicates.
	ActivateMembership(ctx context.Context, membership *models.Membership) error
}
