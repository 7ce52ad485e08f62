package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/urbandrive/urbandrive/internal/pkg/middleware"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/payment"
	httpHandler "github.com/urbandrive/urbandrive/services/payment/handler/http"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(paymentUC payment.PaymentUC, cfg *models.Config) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(paymentUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	g := e.Group("/api/v1/payments")

	// Client-facing routes
	g.POST("", h.paymentHTTP.InitiatePayment)
	g.POST("/intent", h.paymentHTTP.CreateIntent)
	g.POST("/charges", h.paymentHTTP.RecordCharge)
	g.GET("/history/:email", h.paymentHTTP.GetPaymentHistory)

	// Provider-invoked callbacks arrive as browser form posts and carry
	// no credentials; the status sentinel is their only authenticity
	// check.
	g.POST("/success", h.paymentHTTP.PaymentSuccess)
	g.POST("/fail", h.paymentHTTP.PaymentFail)
	g.POST("/cancel", h.paymentHTTP.PaymentCancel)

	// Full audit trail, admin portal only (API key required)
	g.GET("", h.paymentHTTP.ListTransactions, apiKey.ValidateAPIKey("admin-portal"))
}
