package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/payment/mocks"
)

func TestPaymentHandler_InitiatePayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(&models.PaymentResponse{PaymentURL: "https://pay.example.com/session/abc"}, nil)

	e := echo.New()
	reqBody, _ := json.Marshal(map[string]interface{}{
		"price":    500,
		"name":     "A",
		"email":    "a@x.com",
		"planName": "Gold",
	})
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.InitiatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.PaymentResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "https://pay.example.com/session/abc", response.PaymentURL)
}

func TestPaymentHandler_InitiatePayment_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Validation("price must be greater than zero"))

	e := echo.New()
	reqBody, _ := json.Marshal(map[string]interface{}{"price": -5, "name": "A", "email": "a@x.com"})
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.InitiatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPaymentHandler_InitiatePayment_GatewayError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		InitiatePayment(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Gateway("payment provider unreachable", nil))

	e := echo.New()
	reqBody, _ := json.Marshal(map[string]interface{}{"price": 500, "name": "A", "email": "a@x.com"})
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.InitiatePayment(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, recorder.Code)
}

func TestPaymentHandler_PaymentSuccess_Redirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ReconcileSuccess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, callback *models.PaymentCallback) (string, error) {
			assert.Equal(t, models.CallbackStatusValid, callback.Status)
			assert.Equal(t, "txn-1", callback.TranID)
			assert.Equal(t, "VISA", callback.CardType)
			return "http://localhost:5173/success", nil
		})

	// The provider delivers callbacks as form posts.
	form := url.Values{}
	form.Set("status", "VALID")
	form.Set("tran_id", "txn-1")
	form.Set("tran_date", "2024-01-01")
	form.Set("card_type", "VISA")

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.PaymentSuccess(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "http://localhost:5173/success", recorder.Header().Get(echo.HeaderLocation))
}

func TestPaymentHandler_PaymentSuccess_InvalidSentinel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ReconcileSuccess(gomock.Any(), gomock.Any()).
		Return("", apperrors.Authorization("unauthorized payment: invalid status sentinel"))

	form := url.Values{}
	form.Set("status", "FAILED")
	form.Set("tran_id", "txn-1")

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.PaymentSuccess(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestPaymentHandler_PaymentFail_AlwaysRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ReconcileFail(gomock.Any(), gomock.Any()).
		Return("http://localhost:5173/fail", nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.PaymentFail(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "http://localhost:5173/fail", recorder.Header().Get(echo.HeaderLocation))
}

func TestPaymentHandler_PaymentCancel_AlwaysRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		ReconcileCancel(gomock.Any(), gomock.Any()).
		Return("http://localhost:5173/cancel", nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.PaymentCancel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "http://localhost:5173/cancel", recorder.Header().Get(echo.HeaderLocation))
}

func TestPaymentHandler_CreateIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		CreateIntent(gomock.Any(), gomock.Any()).
		Return(&models.IntentResponse{ClientSecret: "pi_secret_123"}, nil)

	e := echo.New()
	reqBody, _ := json.Marshal(map[string]interface{}{"price": 19.99})
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.CreateIntent(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response models.IntentResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "pi_secret_123", response.ClientSecret)
}

func TestPaymentHandler_RecordCharge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		RecordCharge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.PaymentRequest) (*models.Transaction, error) {
			assert.Equal(t, 42.50, req.Price)
			assert.Equal(t, "booking-7", req.BookingID)
			return &models.Transaction{
				TransactionID: "txn-9",
				Status:        models.TransactionStatusSuccess,
			}, nil
		})

	e := echo.New()
	reqBody, _ := json.Marshal(map[string]interface{}{
		"price":     42.50,
		"name":      "A",
		"email":     "a@x.com",
		"bookingId": "booking-7",
	})
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.RecordCharge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var recorded models.Transaction
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &recorded))
	assert.Equal(t, "txn-9", recorded.TransactionID)
	assert.Equal(t, models.TransactionStatusSuccess, recorded.Status)
}

func TestPaymentHandler_RecordCharge_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		RecordCharge(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Validation("email is required"))

	e := echo.New()
	reqBody, _ := json.Marshal(map[string]interface{}{"price": 42.50})
	request := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(reqBody))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)

	err := handler.RecordCharge(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestPaymentHandler_GetPaymentHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	handler := NewPaymentHandler(mockUC)

	mockUC.EXPECT().
		GetPaymentHistory(gomock.Any(), "a@x.com").
		Return([]*models.Transaction{
			{TransactionID: "txn-1", CustomerEmail: "a@x.com", PlanName: "Gold", Status: models.TransactionStatusSuccess},
		}, nil)

	e := echo.New()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("email")
	c.SetParamValues("a@x.com")

	err := handler.GetPaymentHistory(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var txns []*models.Transaction
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &txns))
	assert.Len(t, txns, 1)
	assert.Equal(t, "Gold", txns[0].PlanName)
	assert.Equal(t, models.TransactionStatusSuccess, txns[0].Status)
}
