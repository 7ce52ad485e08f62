package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

func setupTransactionRepoTest(t *testing.T) (*PostgresTransactionRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &PostgresTransactionRepo{db: sqlxDB}

	cleanup := func() {
		mockDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateTransaction(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO transactions").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO transactions").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.True(t, apperrors.Is(err, apperrors.KindPersistence))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			now := time.Now()
			err := repo.CreateTransaction(context.Background(), &models.Transaction{
				TransactionID: "txn-1",
				Amount:        500,
				Currency:      "BDT",
				CustomerName:  "A",
				CustomerEmail: "a@x.com",
				ProductType:   models.ProductTypeMembership,
				PlanName:      "Gold",
				Status:        models.TransactionStatusPending,
				CreatedAt:     now,
				UpdatedAt:     now,
			})

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarkTerminal(t *testing.T) {
	testCases := []struct {
		name       string
		status     models.TransactionStatus
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, transitioned bool, err error)
	}{
		{
			name:   "Pending Row Transitioned",
			status: models.TransactionStatusSuccess,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions").
					WithArgs(models.TransactionStatusSuccess, "2024-01-01", "VISA", "txn-1", models.TransactionStatusPending).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, transitioned bool, err error) {
				assert.NoError(t, err)
				assert.True(t, transitioned)
			},
		},
		{
			name:   "Already Terminal Matches Nothing",
			status: models.TransactionStatusFailed,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions").
					WithArgs(models.TransactionStatusFailed, "2024-01-01", "VISA", "txn-1", models.TransactionStatusPending).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, transitioned bool, err error) {
				assert.NoError(t, err)
				assert.False(t, transitioned)
			},
		},
		{
			name:   "Database Error",
			status: models.TransactionStatusSuccess,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE transactions").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, transitioned bool, err error) {
				assert.Error(t, err)
				assert.False(t, transitioned)
				assert.Contains(t, err.Error(), "failed to update transaction status")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			transitioned, err := repo.MarkTerminal(context.Background(), "txn-1", tc.status, "2024-01-01", "VISA")

			tc.assertFunc(t, transitioned, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetTransaction(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, txn *models.Transaction, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"transaction_id", "amount", "currency", "customer_email", "status"}).
					AddRow("txn-1", 500.0, "BDT", "a@x.com", "Success")
				mock.ExpectQuery("^SELECT \\* FROM transactions WHERE transaction_id").
					WithArgs("txn-1").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.NoError(t, err)
				assert.Equal(t, models.TransactionStatusSuccess, txn.Status)
				assert.Equal(t, "a@x.com", txn.CustomerEmail)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT \\* FROM transactions WHERE transaction_id").
					WithArgs("ghost").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, txn *models.Transaction, err error) {
				assert.Nil(t, txn)
				assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupTransactionRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			id := "txn-1"
			if tc.name == "Not Found" {
				id = "ghost"
			}
			txn, err := repo.GetTransaction(context.Background(), id)

			tc.assertFunc(t, txn, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestListTransactionsByEmail(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"transaction_id", "customer_email", "plan_name", "status"}).
		AddRow("txn-2", "a@x.com", "Gold", "Success").
		AddRow("txn-1", "a@x.com", "", "Failed")
	mock.ExpectQuery("^SELECT \\* FROM transactions WHERE customer_email").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	txns, err := repo.ListTransactionsByEmail(context.Background(), "a@x.com")

	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	assert.Equal(t, "Gold", txns[0].PlanName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpireStalePending(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE transactions").
		WithArgs(models.TransactionStatusFailed, models.TransactionStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	expired, err := repo.ExpireStalePending(context.Background(), time.Hour)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), expired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkBookingPaid(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE bookings").
		WithArgs(models.BookingStatusPaid, models.HostApprovalPendingReview, "booking-1", models.BookingStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkBookingPaid(context.Background(), "booking-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateMembership(t *testing.T) {
	repo, mock, cleanup := setupTransactionRepoTest(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO memberships").
		WillReturnResult(sqlmock.NewResult(0, 1))

	now := time.Now()
	err := repo.ActivateMembership(context.Background(), &models.Membership{
		ID:            "m-1",
		Email:         "a@x.com",
		PlanName:      "Gold",
		TransactionID: "txn-1",
		PurchaseDate:  now,
		ExpiryDate:    now.AddDate(0, 1, 0),
		Status:        models.MembershipStatusActive,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
