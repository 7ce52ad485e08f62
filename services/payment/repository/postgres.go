package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/payment"
)

// PostgresTransactionRepo implements the TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) payment.TransactionRepo {
	return &PostgresTransactionRepo{
		db: db,
	}
}

// CreateTransaction persists a new Pending transaction record
func (r *PostgresTransactionRepo) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO transactions (
			transaction_id, amount, currency, customer_name, customer_email,
			customer_phone, product_type, product_name, booking_id, plan_name,
			start_date, end_date, pickup_city, host_email, status,
			created_at, updated_at
		) VALUES (
			:transaction_id, :amount, :currency, :customer_name, :customer_email,
			:customer_phone, :product_type, :product_name, :booking_id, :plan_name,
			:start_date, :end_date, :pickup_city, :host_email, :status,
			:created_at, :updated_at
		)
	`, txn)

	if err != nil {
		return apperrors.Persistence("failed to create transaction", err)
	}

	return nil
}

// MarkTerminal transitions a Pending transaction to a terminal status.
// The condition on the current status makes the transition atomic: a
// late fail callback cannot downgrade a record that already reached
// Success, and a replayed callback matches zero rows.
func (r *PostgresTransactionRepo) MarkTerminal(ctx context.Context, transactionID string, status models.TransactionStatus, tranDate, cardType string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, tran_date = $2, card_type = $3, updated_at = NOW()
		WHERE transaction_id = $4 AND status = $5
	`, status, tranDate, cardType, transactionID, models.TransactionStatusPending)

	if err != nil {
		return false, apperrors.Persistence("failed to update transaction status", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Persistence("failed to get rows affected", err)
	}

	return rowsAffected > 0, nil
}

// GetTransaction fetches a transaction by its id
func (r *PostgresTransactionRepo) GetTransaction(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.GetContext(ctx, &txn, `
		SELECT * FROM transactions WHERE transaction_id = $1
	`, transactionID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil, apperrors.Persistence("failed to get transaction", err)
	}

	return &txn, nil
}

// ListTransactions returns all transactions, newest first
func (r *PostgresTransactionRepo) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.SelectContext(ctx, &txns, `
		SELECT * FROM transactions ORDER BY created_at DESC
	`)

	if err != nil {
		return nil, apperrors.Persistence("failed to list transactions", err)
	}

	return txns, nil
}

// ListTransactionsByEmail returns a payer's transactions, newest first
func (r *PostgresTransactionRepo) ListTransactionsByEmail(ctx context.Context, email string) ([]*models.Transaction, error) {
	var txns []*models.Transaction
	err := r.db.SelectContext(ctx, &txns, `
		SELECT * FROM transactions WHERE customer_email = $1 ORDER BY created_at DESC
	`, email)

	if err != nil {
		return nil, apperrors.Persistence("failed to list transactions by email", err)
	}

	return txns, nil
}

// ExpireStalePending fails Pending transactions whose initiation never
// produced a callback within the cutoff window.
func (r *PostgresTransactionRepo) ExpireStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	result, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
	`, models.TransactionStatusFailed, models.TransactionStatusPending, cutoff)

	if err != nil {
		return 0, apperrors.Persistence("failed to expire stale pending transactions", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Persistence("failed to get rows affected", err)
	}

	return rowsAffected, nil
}

// MarkBookingPaid marks a booking paid and queues it for host review.
// The status condition keeps replays from re-applying the mutation.
func (r *PostgresTransactionRepo) MarkBookingPaid(ctx context.Context, bookingID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE bookings
		SET status = $1, host_approval = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`, models.BookingStatusPaid, models.HostApprovalPendingReview, bookingID, models.BookingStatusPending)

	if err != nil {
		return apperrors.Persistence("failed to mark booking paid", err)
	}

	return nil
}

// ActivateMembership records an active enrollment. The unique index on
// transaction_id plus ON CONFLICT DO NOTHING makes callback replays
// harmless.
func (r *PostgresTransactionRepo) ActivateMembership(ctx context.Context, membership *models.Membership) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO memberships (
			id, email, plan_name, transaction_id, purchase_date, expiry_date, status
		) VALUES (
			:id, :email, :plan_name, :transaction_id, :purchase_date, :expiry_date, :status
		)
		ON CONFLICT (transaction_id) DO NOTHING
	`, membership)

	if err != nil {
		return apperrors.Persistence("failed to activate membership", err)
	}

	return nil
}
