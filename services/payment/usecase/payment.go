package usecase

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	nrpkg "github.com/urbandrive/urbandrive/internal/pkg/newrelic"
	"github.com/urbandrive/urbandrive/services/payment"
)

// intentCurrency is the fixed settlement currency of the card-element
// provider path.
const intentCurrency = "usd"

// PaymentUseCase implements the payment.PaymentUC interface
type PaymentUseCase struct {
	cfg       *models.Config
	repo      payment.TransactionRepo
	paymentGW payment.PaymentGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(cfg *models.Config, repo payment.TransactionRepo, gw payment.PaymentGW) payment.PaymentUC {
	return &PaymentUseCase{
		cfg:       cfg,
		repo:      repo,
		paymentGW: gw,
	}
}

// InitiatePayment starts a hosted-payment-page flow. The transaction is
// persisted only after the provider returned a usable redirect URL, so a
// rejected initiation leaves no orphaned Pending record.
func (uc *PaymentUseCase) InitiatePayment(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error) {
	if req.Price <= 0 {
		return nil, apperrors.Validation("price must be greater than zero")
	}
	if req.Name == "" {
		return nil, apperrors.Validation("name is required")
	}
	if req.Email == "" {
		return nil, apperrors.Validation("email is required")
	}

	currency := req.Currency
	if currency == "" {
		currency = uc.cfg.Payment.DefaultCurrency
	}

	productType := models.ProductTypeBooking
	if req.PlanName != "" {
		productType = models.ProductTypeMembership
	}

	now := time.Now()
	txn := &models.Transaction{
		TransactionID: uuid.New().String(),
		Amount:        req.Price,
		Currency:      currency,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		ProductType:   productType,
		ProductName:   req.ProductName,
		BookingID:     req.BookingID,
		PlanName:      req.PlanName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PickupCity:    req.PickupCity,
		HostEmail:     req.HostEmail,
		Status:        models.TransactionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var paymentURL string
	err := nrpkg.WithSegment(ctx, "HostedPayment.CreateSession", func() error {
		var gwErr error
		paymentURL, gwErr = uc.paymentGW.InitiateHostedPayment(ctx, txn)
		return gwErr
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	logger.Info("Payment initiated",
		logger.String("transaction_id", txn.TransactionID),
		logger.String("customer_email", txn.CustomerEmail),
		logger.Float64("amount", txn.Amount))

	return &models.PaymentResponse{PaymentURL: paymentURL}, nil
}

// ReconcileSuccess applies a provider success callback. The status
// sentinel gates the whole path; the conditional update decides between
// first delivery, replay and unknown id. Linked side effects run only on
// the first transition.
func (uc *PaymentUseCase) ReconcileSuccess(ctx context.Context, callback *models.PaymentCallback) (string, error) {
	if callback.Status != models.CallbackStatusValid {
		return "", apperrors.Authorization("unauthorized payment: invalid status sentinel")
	}

	transitioned, err := uc.repo.MarkTerminal(ctx, callback.TranID, models.TransactionStatusSuccess, callback.TranDate, callback.CardType)
	if err != nil {
		// The provider retries on non-2xx; acknowledge with a redirect
		// and alert instead.
		logger.Error("Success callback could not be persisted",
			logger.String("transaction_id", callback.TranID),
			logger.Err(err))
		return uc.cfg.Redirect.FailURL, nil
	}

	if !transitioned {
		_, getErr := uc.repo.GetTransaction(ctx, callback.TranID)
		if getErr != nil {
			// A callback must never create a transaction record, no
			// matter what it claims.
			logger.Warn("Success callback for unknown transaction",
				logger.String("transaction_id", callback.TranID))
			return uc.cfg.Redirect.FailURL, nil
		}
		// Provider retry of an already reconciled transaction.
		logger.Info("Success callback replayed, transaction already terminal",
			logger.String("transaction_id", callback.TranID))
		return uc.cfg.Redirect.SuccessURL, nil
	}

	txn, err := uc.repo.GetTransaction(ctx, callback.TranID)
	if err != nil {
		logger.Error("Failed to load transaction after transition",
			logger.String("transaction_id", callback.TranID),
			logger.Err(err))
		return uc.cfg.Redirect.SuccessURL, nil
	}

	uc.applyLinkage(ctx, txn)
	uc.publishReconciled(ctx, txn)

	logger.Info("Payment reconciled",
		logger.String("transaction_id", txn.TransactionID),
		logger.String("product_type", txn.ProductType))

	return uc.cfg.Redirect.SuccessURL, nil
}

// ReconcileFail transitions the transaction to Failed and redirects. The
// conditional update means a fail callback arriving after a success one
// cannot downgrade the record.
func (uc *PaymentUseCase) ReconcileFail(ctx context.Context, callback *models.PaymentCallback) (string, error) {
	uc.reconcileTerminal(ctx, callback, models.TransactionStatusFailed)
	return uc.cfg.Redirect.FailURL, nil
}

// ReconcileCancel transitions the transaction to Cancelled and redirects.
func (uc *PaymentUseCase) ReconcileCancel(ctx context.Context, callback *models.PaymentCallback) (string, error) {
	uc.reconcileTerminal(ctx, callback, models.TransactionStatusCancelled)
	return uc.cfg.Redirect.CancelURL, nil
}

func (uc *PaymentUseCase) reconcileTerminal(ctx context.Context, callback *models.PaymentCallback, status models.TransactionStatus) {
	if callback.TranID == "" {
		return
	}

	// Provider metadata is recorded only on the Success transition; a
	// failed or cancelled attempt keeps the record bare.
	transitioned, err := uc.repo.MarkTerminal(ctx, callback.TranID, status, "", "")
	if err != nil {
		logger.Error("Callback could not be persisted",
			logger.String("transaction_id", callback.TranID),
			logger.String("status", string(status)),
			logger.Err(err))
		return
	}
	if !transitioned {
		return
	}

	if txn, err := uc.repo.GetTransaction(ctx, callback.TranID); err == nil {
		uc.publishReconciled(ctx, txn)
	}

	logger.Info("Payment reconciled",
		logger.String("transaction_id", callback.TranID),
		logger.String("status", string(status)))
}

// applyLinkage associates a successful transaction with the business
// object it paid for. Both branches are written to be idempotent so a
// replayed callback cannot duplicate the side effect.
func (uc *PaymentUseCase) applyLinkage(ctx context.Context, txn *models.Transaction) {
	switch txn.ProductType {
	case models.ProductTypeBooking:
		if txn.BookingID == "" {
			return
		}
		if err := uc.repo.MarkBookingPaid(ctx, txn.BookingID); err != nil {
			logger.Error("Failed to mark booking paid",
				logger.String("transaction_id", txn.TransactionID),
				logger.String("booking_id", txn.BookingID),
				logger.Err(err))
		}
	case models.ProductTypeMembership:
		purchase := time.Now()
		expiry := purchase.AddDate(0, 1, 0)
		if txn.EndDate != nil {
			expiry = *txn.EndDate
		}
		membership := &models.Membership{
			ID:            uuid.New().String(),
			Email:         txn.CustomerEmail,
			PlanName:      txn.PlanName,
			TransactionID: txn.TransactionID,
			PurchaseDate:  purchase,
			ExpiryDate:    expiry,
			Status:        models.MembershipStatusActive,
		}
		if err := uc.repo.ActivateMembership(ctx, membership); err != nil {
			logger.Error("Failed to activate membership",
				logger.String("transaction_id", txn.TransactionID),
				logger.String("plan_name", txn.PlanName),
				logger.Err(err))
		}
	}
}

func (uc *PaymentUseCase) publishReconciled(ctx context.Context, txn *models.Transaction) {
	event := models.PaymentReconciledEvent{
		TransactionID: txn.TransactionID,
		Status:        txn.Status,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		CustomerEmail: txn.CustomerEmail,
		ProductType:   txn.ProductType,
		Timestamp:     time.Now().UTC(),
	}
	if err := uc.paymentGW.PublishPaymentReconciled(ctx, event); err != nil {
		logger.Error("Failed to publish payment reconciled event",
			logger.String("transaction_id", txn.TransactionID),
			logger.Err(err))
	}
}

// CreateIntent converts the price to minor units and requests a client
// secret. The minimum-amount check runs on the unrounded value so a
// half-cent price cannot round up into a chargeable amount.
func (uc *PaymentUseCase) CreateIntent(ctx context.Context, req *models.IntentRequest) (*models.IntentResponse, error) {
	minor := req.Price * 100
	if minor < 1 {
		return nil, apperrors.Validation("price resolves below the minimum chargeable amount")
	}
	amountMinor := int64(math.Round(minor))

	var clientSecret string
	err := nrpkg.WithSegment(ctx, "CardElement.CreateIntent", func() error {
		var gwErr error
		clientSecret, gwErr = uc.paymentGW.CreatePaymentIntent(ctx, amountMinor, intentCurrency)
		return gwErr
	})
	if err != nil {
		return nil, err
	}

	return &models.IntentResponse{ClientSecret: clientSecret}, nil
}

// RecordCharge persists a card-element charge after the client confirmed
// the intent in the browser. Unlike the hosted-page flow there is no
// provider callback, so the transaction is written Success directly and
// linked side effects run here.
func (uc *PaymentUseCase) RecordCharge(ctx context.Context, req *models.PaymentRequest) (*models.Transaction, error) {
	if req.Price <= 0 {
		return nil, apperrors.Validation("price must be greater than zero")
	}
	if req.Email == "" {
		return nil, apperrors.Validation("email is required")
	}

	currency := req.Currency
	if currency == "" {
		currency = intentCurrency
	}

	productType := models.ProductTypeBooking
	if req.PlanName != "" {
		productType = models.ProductTypeMembership
	}

	now := time.Now()
	txn := &models.Transaction{
		TransactionID: uuid.New().String(),
		Amount:        req.Price,
		Currency:      currency,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		ProductType:   productType,
		ProductName:   req.ProductName,
		BookingID:     req.BookingID,
		PlanName:      req.PlanName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PickupCity:    req.PickupCity,
		HostEmail:     req.HostEmail,
		Status:        models.TransactionStatusSuccess,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	uc.applyLinkage(ctx, txn)
	uc.publishReconciled(ctx, txn)

	logger.Info("Card charge recorded",
		logger.String("transaction_id", txn.TransactionID),
		logger.String("customer_email", txn.CustomerEmail),
		logger.Float64("amount", txn.Amount))

	return txn, nil
}

// ListTransactions returns the full audit trail
func (uc *PaymentUseCase) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	return uc.repo.ListTransactions(ctx)
}

// GetPaymentHistory returns a payer's transactions
func (uc *PaymentUseCase) GetPaymentHistory(ctx context.Context, email string) ([]*models.Transaction, error) {
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}
	return uc.repo.ListTransactionsByEmail(ctx, email)
}

// ExpireStalePending fails Pending transactions older than the
// configured window. Invoked periodically by the service main.
func (uc *PaymentUseCase) ExpireStalePending(ctx context.Context) (int64, error) {
	maxAge := time.Duration(uc.cfg.Payment.PendingMaxAge) * time.Minute
	if maxAge <= 0 {
		maxAge = time.Hour
	}

	expired, err := uc.repo.ExpireStalePending(ctx, maxAge)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		logger.Info("Expired stale pending transactions", logger.Int64("count", expired))
	}
	return expired, nil
}
