package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	nrpkg "github.com/urbandrive/urbandrive/internal/pkg/newrelic"
	"github.com/urbandrive/urbandrive/internal/utils"
	"github.com/urbandrive/urbandrive/services/payment"
)

// PaymentHandler handles HTTP requests for payment operations
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: paymentUC,
	}
}

// InitiatePayment starts a hosted-payment-page flow and returns the
// provider redirect URL.
func (h *PaymentHandler) InitiatePayment(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.Initiate")

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.paymentUC.InitiatePayment(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, resp)
}

// PaymentSuccess receives the provider success callback. The provider
// posts form-encoded and expects a redirect, never a JSON body.
func (h *PaymentHandler) PaymentSuccess(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.SuccessCallback")

	var callback models.PaymentCallback
	if err := c.Bind(&callback); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid callback payload")
	}

	nrpkg.AddTransactionAttribute(txn, "transaction.id", callback.TranID)

	redirectURL, err := h.paymentUC.ReconcileSuccess(c.Request().Context(), &callback)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.Redirect(http.StatusSeeOther, redirectURL)
}

// PaymentFail receives the provider fail callback
func (h *PaymentHandler) PaymentFail(c echo.Context) error {
	var callback models.PaymentCallback
	_ = c.Bind(&callback)

	redirectURL, _ := h.paymentUC.ReconcileFail(c.Request().Context(), &callback)
	return c.Redirect(http.StatusSeeOther, redirectURL)
}

// PaymentCancel receives the provider cancel callback
func (h *PaymentHandler) PaymentCancel(c echo.Context) error {
	var callback models.PaymentCallback
	_ = c.Bind(&callback)

	redirectURL, _ := h.paymentUC.ReconcileCancel(c.Request().Context(), &callback)
	return c.Redirect(http.StatusSeeOther, redirectURL)
}

// CreateIntent issues a card-element client secret
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.CreateIntent")

	var req models.IntentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.paymentUC.CreateIntent(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, resp)
}

// RecordCharge stores a card-element charge confirmed client-side
func (h *PaymentHandler) RecordCharge(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Payment.RecordCharge")

	var req models.PaymentRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	recorded, err := h.paymentUC.RecordCharge(c.Request().Context(), &req)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusCreated, recorded)
}

// ListTransactions returns all transactions
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	txns, err := h.paymentUC.ListTransactions(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, txns)
}

// GetPaymentHistory returns a payer's transactions by email
func (h *PaymentHandler) GetPaymentHistory(c echo.Context) error {
	email := c.Param("email")

	txns, err := h.paymentUC.GetPaymentHistory(c.Request().Context(), email)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, txns)
}
