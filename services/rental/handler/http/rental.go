package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/internal/utils"
	"github.com/urbandrive/urbandrive/services/rental"
)

// RentalHandler handles HTTP requests for car and booking operations
type RentalHandler struct {
	rentalUC rental.RentalUC
}

// NewRentalHandler creates a new rental handler
func NewRentalHandler(rentalUC rental.RentalUC) *RentalHandler {
	return &RentalHandler{
		rentalUC: rentalUC,
	}
}

// ListCars returns one page of the catalog with optional filters
func (h *RentalHandler) ListCars(c echo.Context) error {
	filter := &models.CarFilter{
		Page:      atoiDefault(c.QueryParam("page"), 1),
		Limit:     atoiDefault(c.QueryParam("limit"), 6),
		Category:  c.QueryParam("category"),
		MinPrice:  parseFloatDefault(c.QueryParam("minPrice"), 0),
		MaxPrice:  parseFloatDefault(c.QueryParam("maxPrice"), 0),
		SeatCount: atoiDefault(c.QueryParam("seatCount"), 0),
		Sort:      c.QueryParam("sort"),
	}
	if driver := c.QueryParam("driver"); driver != "" {
		withDriver := driver == "yes"
		filter.WithDriver = &withDriver
	}
	if pickup := c.QueryParam("homePickup"); pickup != "" {
		homePickup := pickup == "yes"
		filter.HomePickup = &homePickup
	}

	page, err := h.rentalUC.ListCars(c.Request().Context(), filter)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, page)
}

// SearchCars runs a proximity search around the given coordinates
func (h *RentalHandler) SearchCars(c echo.Context) error {
	req := &rental.CarSearchRequest{
		Location:    c.QueryParam("location"),
		Latitude:    parseFloatDefault(c.QueryParam("lat"), 0),
		Longitude:   parseFloatDefault(c.QueryParam("lng"), 0),
		MaxDistance: parseFloatDefault(c.QueryParam("maxDistance"), 0),
	}

	cars, err := h.rentalUC.SearchCars(c.Request().Context(), req)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, cars)
}

// GetCar returns a single car listing
func (h *RentalHandler) GetCar(c echo.Context) error {
	car, err := h.rentalUC.GetCar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, car)
}

// DeleteCar removes a car listing
func (h *RentalHandler) DeleteCar(c echo.Context) error {
	if err := h.rentalUC.DeleteCar(c.Request().Context(), c.Param("id")); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Car deleted successfully", nil)
}

// HostCar records a host vehicle submission
func (h *RentalHandler) HostCar(c echo.Context) error {
	var car models.HostCar
	if err := c.Bind(&car); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	carID, err := h.rentalUC.HostCar(c.Request().Context(), &car)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Car hosted successfully", map[string]string{"carId": carID})
}

// ListHostCars returns all host submissions
func (h *RentalHandler) ListHostCars(c echo.Context) error {
	cars, err := h.rentalUC.ListHostCars(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, cars)
}

// CreateBooking creates a booking and returns its id
func (h *RentalHandler) CreateBooking(c echo.Context) error {
	var booking models.Booking
	if err := c.Bind(&booking); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	bookingID, err := h.rentalUC.CreateBooking(c.Request().Context(), &booking)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Booking created successfully", map[string]string{"bookingId": bookingID})
}

// GetBooking returns a single booking
func (h *RentalHandler) GetBooking(c echo.Context) error {
	booking, err := h.rentalUC.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, booking)
}

// ListBookings returns all bookings
func (h *RentalHandler) ListBookings(c echo.Context) error {
	bookings, err := h.rentalUC.ListBookings(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, bookings)
}

// UpdateBooking merges the recognized mutable fields into a booking
func (h *RentalHandler) UpdateBooking(c echo.Context) error {
	var update models.BookingUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.rentalUC.UpdateBooking(c.Request().Context(), c.Param("id"), &update); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking updated successfully", nil)
}

// ListRecentBookings returns the latest bookings for the dashboard
func (h *RentalHandler) ListRecentBookings(c echo.Context) error {
	bookings, err := h.rentalUC.ListRecentBookings(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, bookings)
}

// GetAdminStats returns marketplace counts
func (h *RentalHandler) GetAdminStats(c echo.Context) error {
	stats, err := h.rentalUC.GetAdminStats(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.HTTPStatus(err), err.Error())
	}

	return c.JSON(http.StatusOK, stats)
}

func atoiDefault(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func parseFloatDefault(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
