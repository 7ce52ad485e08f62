package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/urbandrive/urbandrive/internal/pkg/middleware"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/user"
	httpHandler "github.com/urbandrive/urbandrive/services/user/handler/http"
)

// Handler combines all handlers for the user service
type Handler struct {
	userHTTP *httpHandler.UserHandler
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(userUC user.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		userHTTP: httpHandler.NewUserHandler(userUC),
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	api := e.Group("/api/v1")

	users := api.Group("/users")
	users.POST("", h.userHTTP.CreateUser)
	users.GET("/:email", h.userHTTP.GetUser)
	users.PUT("/:email", h.userHTTP.UpdateUser)

	// Full account listing, admin portal only (API key required)
	users.GET("", h.userHTTP.ListUsers, apiKey.ValidateAPIKey("admin-portal"))

	verification := api.Group("/verification")
	verification.POST("/send", h.userHTTP.SendVerificationCode)
	verification.POST("/verify", h.userHTTP.VerifyCode)

	api.POST("/chat/token", h.userHTTP.IssueChatToken)
	api.GET("/chat/session", h.userHTTP.ChatSession, middleware.JWTAuthMiddleware(h.cfg.JWT))

	memberships := api.Group("/memberships")
	memberships.GET("", h.userHTTP.ListMembershipPlans)
	memberships.GET("/enrollments", h.userHTTP.ListEnrollments)
}
