package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/urbandrive/urbandrive/internal/pkg/middleware"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/rental"
	httpHandler "github.com/urbandrive/urbandrive/services/rental/handler/http"
)

// Handler combines all handlers for the rental service
type Handler struct {
	rentalHTTP *httpHandler.RentalHandler
	cfg        *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(rentalUC rental.RentalUC, cfg *models.Config) *Handler {
	return &Handler{
		rentalHTTP: httpHandler.NewRentalHandler(rentalUC),
		cfg:        cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	v1 := e.Group("/api/v1")

	// Car catalog
	cars := v1.Group("/cars")
	cars.GET("", h.rentalHTTP.ListCars)
	cars.GET("/search", h.rentalHTTP.SearchCars)
	cars.GET("/:id", h.rentalHTTP.GetCar)
	cars.DELETE("/:id", h.rentalHTTP.DeleteCar, apiKey.ValidateAPIKey("admin-portal"))

	// Host submissions
	v1.POST("/host-cars", h.rentalHTTP.HostCar)
	v1.GET("/host-cars", h.rentalHTTP.ListHostCars)

	// Bookings
	bookings := v1.Group("/bookings")
	bookings.POST("", h.rentalHTTP.CreateBooking)
	bookings.GET("", h.rentalHTTP.ListBookings)
	bookings.GET("/recent", h.rentalHTTP.ListRecentBookings)
	bookings.GET("/:id", h.rentalHTTP.GetBooking)
	bookings.PUT("/:id", h.rentalHTTP.UpdateBooking)

	// Admin dashboard
	v1.GET("/stats", h.rentalHTTP.GetAdminStats, apiKey.ValidateAPIKey("admin-portal"))
}
