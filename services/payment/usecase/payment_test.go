package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/payment/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Payment: models.PaymentConfig{
			StoreID:         "store-1",
			StorePassword:   "secret",
			GatewayURL:      "https://sandbox.example.com/gwprocess/v4/api.php",
			CallbackBaseURL: "http://localhost:8000",
			DefaultCurrency: "BDT",
			PendingMaxAge:   60,
		},
		Redirect: models.RedirectConfig{
			SuccessURL: "http://localhost:5173/success",
			FailURL:    "http://localhost:5173/fail",
			CancelURL:  "http://localhost:5173/cancel",
		},
	}
}

func TestInitiatePayment_CreatesPendingTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	req := &models.PaymentRequest{
		Price:    500,
		Name:     "A",
		Email:    "a@x.com",
		PlanName: "Gold",
	}

	var issuedID string
	mockGW.EXPECT().
		InitiateHostedPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) (string, error) {
			assert.NotEmpty(t, txn.TransactionID)
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			assert.Equal(t, "BDT", txn.Currency)
			assert.Equal(t, models.ProductTypeMembership, txn.ProductType)
			issuedID = txn.TransactionID
			return "https://pay.example.com/session/abc", nil
		})

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.Equal(t, issuedID, txn.TransactionID)
			assert.Equal(t, models.TransactionStatusPending, txn.Status)
			return nil
		})

	resp, err := uc.InitiatePayment(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/abc", resp.PaymentURL)
}

func TestInitiatePayment_UniqueTransactionIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	seen := make(map[string]bool)
	mockGW.EXPECT().
		InitiateHostedPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) (string, error) {
			assert.False(t, seen[txn.TransactionID])
			seen[txn.TransactionID] = true
			return "https://pay.example.com/session", nil
		}).
		Times(3)
	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	for i := 0; i < 3; i++ {
		_, err := uc.InitiatePayment(context.Background(), &models.PaymentRequest{
			Price: 100, Name: "A", Email: "a@x.com",
		})
		assert.NoError(t, err)
	}
	assert.Len(t, seen, 3)
}

func TestInitiatePayment_RejectsNonPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No gateway or repository call may happen for a rejected amount.
	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	for _, price := range []float64{0, -1, -500} {
		resp, err := uc.InitiatePayment(context.Background(), &models.PaymentRequest{
			Price: price, Name: "A", Email: "a@x.com",
		})
		assert.Nil(t, resp)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	}
}

func TestInitiatePayment_GatewayFailureLeavesNoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	mockGW.EXPECT().
		InitiateHostedPayment(gomock.Any(), gomock.Any()).
		Return("", apperrors.Gateway("provider response contains no redirect URL", nil))
	// CreateTransaction must not be called.

	resp, err := uc.InitiatePayment(context.Background(), &models.PaymentRequest{
		Price: 500, Name: "A", Email: "a@x.com",
	})

	assert.Nil(t, resp)
	assert.True(t, apperrors.Is(err, apperrors.KindGateway))
}

func TestReconcileSuccess_TransitionsAndLinksBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	cfg := testConfig()
	uc := NewPaymentUC(cfg, mockRepo, mockGW)

	txn := &models.Transaction{
		TransactionID: "txn-1",
		Amount:        500,
		Currency:      "BDT",
		CustomerEmail: "a@x.com",
		ProductType:   models.ProductTypeBooking,
		BookingID:     "booking-1",
		Status:        models.TransactionStatusSuccess,
	}

	mockRepo.EXPECT().
		MarkTerminal(gomock.Any(), "txn-1", models.TransactionStatusSuccess, "2024-01-01", "VISA").
		Return(true, nil)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), "txn-1").Return(txn, nil)
	mockRepo.EXPECT().MarkBookingPaid(gomock.Any(), "booking-1").Return(nil)
	mockGW.EXPECT().
		PublishPaymentReconciled(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.PaymentReconciledEvent) error {
			assert.Equal(t, "txn-1", event.TransactionID)
			assert.Equal(t, models.TransactionStatusSuccess, event.Status)
			return nil
		})

	redirect, err := uc.ReconcileSuccess(context.Background(), &models.PaymentCallback{
		Status:   models.CallbackStatusValid,
		TranID:   "txn-1",
		TranDate: "2024-01-01",
		CardType: "VISA",
	})

	assert.NoError(t, err)
	assert.Equal(t, cfg.Redirect.SuccessURL, redirect)
}

func TestReconcileSuccess_ActivatesMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	txn := &models.Transaction{
		TransactionID: "txn-2",
		Amount:        1000,
		Currency:      "BDT",
		CustomerEmail: "a@x.com",
		ProductType:   models.ProductTypeMembership,
		PlanName:      "Gold",
		Status:        models.TransactionStatusSuccess,
	}

	mockRepo.EXPECT().
		MarkTerminal(gomock.Any(), "txn-2", models.TransactionStatusSuccess, "2024-01-01", "VISA").
		Return(true, nil)
	mockRepo.EXPECT().GetTransaction(gomock.Any(), "txn-2").Return(txn, nil)
	mockRepo.EXPECT().
		ActivateMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Membership) error {
			assert.Equal(t, "txn-2", m.TransactionID)
			assert.Equal(t, "Gold", m.PlanName)
			assert.Equal(t, "a@x.com", m.Email)
			assert.Equal(t, models.MembershipStatusActive, m.Status)
			assert.True(t, m.ExpiryDate.After(m.PurchaseDate))
			return nil
		})
	mockGW.EXPECT().PublishPaymentReconciled(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.ReconcileSuccess(context.Background(), &models.PaymentCallback{
		Status:   models.CallbackStatusValid,
		TranID:   "txn-2",
		TranDate: "2024-01-01",
		CardType: "VISA",
	})

	assert.NoError(t, err)
}

func TestReconcileSuccess_ReplayIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	cfg := testConfig()
	uc := NewPaymentUC(cfg, mockRepo, mockGW)

	// Second delivery matches zero Pending rows; the transaction exists,
	// so no side effect re-runs and the client still lands on success.
	mockRepo.EXPECT().
		MarkTerminal(gomock.Any(), "txn-1", models.TransactionStatusSuccess, "2024-01-01", "VISA").
		Return(false, nil)
	mockRepo.EXPECT().
		GetTransaction(gomock.Any(), "txn-1").
		Return(&models.Transaction{TransactionID: "txn-1", Status: models.TransactionStatusSuccess}, nil)

	redirect, err := uc.ReconcileSuccess(context.Background(), &models.PaymentCallback{
		Status:   models.CallbackStatusValid,
		TranID:   "txn-1",
		TranDate: "2024-01-01",
		CardType: "VISA",
	})

	assert.NoError(t, err)
	assert.Equal(t, cfg.Redirect.SuccessURL, redirect)
}

func TestReconcileSuccess_InvalidSentinelRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nothing may be read or written when the sentinel is wrong.
	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	redirect, err := uc.ReconcileSuccess(context.Background(), &models.PaymentCallback{
		Status: "FAILED",
		TranID: "txn-1",
	})

	assert.Empty(t, redirect)
	assert.True(t, apperrors.Is(err, apperrors.KindAuthorization))
}

func TestReconcileSuccess_UnknownTransactionCreatesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	cfg := testConfig()
	uc := NewPaymentUC(cfg, mockRepo, mockGW)

	mockRepo.EXPECT().
		MarkTerminal(gomock.Any(), "ghost", models.TransactionStatusSuccess, "", "").
		Return(false, nil)
	mockRepo.EXPECT().
		GetTransaction(gomock.Any(), "ghost").
		Return(nil, apperrors.NotFound("transaction ghost not found"))

	redirect, err := uc.ReconcileSuccess(context.Background(), &models.PaymentCallback{
		Status: models.CallbackStatusValid,
		TranID: "ghost",
	})

	assert.NoError(t, err)
	assert.Equal(t, cfg.Redirect.FailURL, redirect)
}

func TestReconcileFail_TransitionsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	cfg := testConfig()
	uc := NewPaymentUC(cfg, mockRepo, mockGW)

	// Provider metadata in the callback must not reach the record; only
	// the Success transition stores it.
	mockRepo.EXPECT().
		MarkTerminal(gomock.Any(), "txn-1", models.TransactionStatusFailed, "", "").
		Return(true, nil)
	mockRepo.EXPECT().
		GetTransaction(gomock.Any(), "txn-1").
		Return(&models.Transaction{TransactionID: "txn-1", Status: models.TransactionStatusFailed}, nil)
	mockGW.EXPECT().PublishPaymentReconciled(gomock.Any(), gomock.Any()).Return(nil)

	redirect, err := uc.ReconcileFail(context.Background(), &models.PaymentCallback{
		TranID:   "txn-1",
		TranDate: "2024-01-01",
		CardType: "VISA",
	})

	assert.NoError(t, err)
	assert.Equal(t, cfg.Redirect.FailURL, redirect)
}

func TestReconcileFail_CannotDowngradeTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	cfg := testConfig()
	uc := NewPaymentUC(cfg, mockRepo, mockGW)

	// The transaction already reached Success; the conditional update
	// matches nothing and no event is published.
	mockRepo.EXPECT().
		MarkTerminal(gomock.Any(), "txn-1", models.TransactionStatusFailed, "", "").
		Return(false, nil)

	redirect, err := uc.ReconcileFail(context.Background(), &models.PaymentCallback{TranID: "txn-1"})

	assert.NoError(t, err)
	assert.Equal(t, cfg.Redirect.FailURL, redirect)
}

func TestReconcileCancel_RedirectsWithoutTranID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	cfg := testConfig()
	uc := NewPaymentUC(cfg, mockRepo, mockGW)

	redirect, err := uc.ReconcileCancel(context.Background(), &models.PaymentCallback{})

	assert.NoError(t, err)
	assert.Equal(t, cfg.Redirect.CancelURL, redirect)
}

func TestCreateIntent_ConvertsToMinorUnits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	mockGW.EXPECT().
		CreatePaymentIntent(gomock.Any(), int64(1999), "usd").
		Return("pi_secret_123", nil)

	resp, err := uc.CreateIntent(context.Background(), &models.IntentRequest{Price: 19.99})

	assert.NoError(t, err)
	assert.Equal(t, "pi_secret_123", resp.ClientSecret)
}

func TestCreateIntent_RejectsSubMinimumAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	// 0.005 would round up to a chargeable cent; the check runs before
	// rounding so it must be rejected too.
	for _, price := range []float64{0, 0.004, 0.005, 0.0099, -5} {
		resp, err := uc.CreateIntent(context.Background(), &models.IntentRequest{Price: price})
		assert.Nil(t, resp)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	}
}

func TestRecordCharge_WritesTerminalBookingRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txn *models.Transaction) error {
			assert.NotEmpty(t, txn.TransactionID)
			assert.Equal(t, models.TransactionStatusSuccess, txn.Status)
			assert.Equal(t, models.ProductTypeBooking, txn.ProductType)
			assert.Equal(t, "usd", txn.Currency)
			return nil
		})
	mockRepo.EXPECT().MarkBookingPaid(gomock.Any(), "booking-7").Return(nil)
	mockGW.EXPECT().
		PublishPaymentReconciled(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.PaymentReconciledEvent) error {
			assert.Equal(t, models.TransactionStatusSuccess, event.Status)
			return nil
		})

	recorded, err := uc.RecordCharge(context.Background(), &models.PaymentRequest{
		Price:     42.50,
		Name:      "A",
		Email:     "a@x.com",
		BookingID: "booking-7",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.TransactionStatusSuccess, recorded.Status)
}

func TestRecordCharge_ActivatesMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().
		ActivateMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.Membership) error {
			assert.Equal(t, "Gold", m.PlanName)
			assert.Equal(t, "a@x.com", m.Email)
			assert.Equal(t, models.MembershipStatusActive, m.Status)
			return nil
		})
	mockGW.EXPECT().PublishPaymentReconciled(gomock.Any(), gomock.Any()).Return(nil)

	recorded, err := uc.RecordCharge(context.Background(), &models.PaymentRequest{
		Price:    99,
		Name:     "A",
		Email:    "a@x.com",
		PlanName: "Gold",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.ProductTypeMembership, recorded.ProductType)
}

func TestRecordCharge_RequiresPriceAndEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A rejected request must not touch the store or publish anything.
	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	for _, req := range []*models.PaymentRequest{
		{Price: 0, Email: "a@x.com"},
		{Price: 42, Email: ""},
	} {
		recorded, err := uc.RecordCharge(context.Background(), req)
		assert.Nil(t, recorded)
		assert.True(t, apperrors.Is(err, apperrors.KindValidation))
	}
}

func TestGetPaymentHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	expected := []*models.Transaction{
		{TransactionID: "txn-1", CustomerEmail: "a@x.com", PlanName: "Gold", Status: models.TransactionStatusSuccess},
	}
	mockRepo.EXPECT().ListTransactionsByEmail(gomock.Any(), "a@x.com").Return(expected, nil)

	txns, err := uc.GetPaymentHistory(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.Len(t, txns, 1)
	assert.Equal(t, "Gold", txns[0].PlanName)
}

func TestExpireStalePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		ExpireStalePending(gomock.Any(), 60*time.Minute).
		Return(int64(2), nil)

	expired, err := uc.ExpireStalePending(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(2), expired)
}

func TestExpireStalePending_PropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	uc := NewPaymentUC(testConfig(), mockRepo, mockGW)

	mockRepo.EXPECT().
		ExpireStalePending(gomock.Any(), gomock.Any()).
		Return(int64(0), apperrors.Persistence("failed to expire stale pending transactions", errors.New("connection refused")))

	_, err := uc.ExpireStalePending(context.Background())

	assert.True(t, apperrors.Is(err, apperrors.KindPersistence))
}
