package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/rental"
	"github.com/urbandrive/urbandrive/services/rental/mocks"
)

func TestListCars(t *testing.T) {
	t.Run("parses query filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			ListCars(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter *models.CarFilter) (*models.CarPage, error) {
				assert.Equal(t, 2, filter.Page)
				assert.Equal(t, "suv", filter.Category)
				assert.Equal(t, 100.0, filter.MaxPrice)
				assert.NotNil(t, filter.WithDriver)
				assert.True(t, *filter.WithDriver)
				assert.NotNil(t, filter.HomePickup)
				assert.False(t, *filter.HomePickup)
				return &models.CarPage{TotalCars: 1, TotalPages: 1, CurrentPage: 2}, nil
			})

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/cars?page=2&category=suv&maxPrice=100&driver=yes&homePickup=no", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.ListCars(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var page models.CarPage
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 2, page.CurrentPage)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			ListCars(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.Persistence("failed to list cars", nil))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cars", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.ListCars(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSearchCars(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRentalUC(ctrl)
	handler := NewRentalHandler(mockUC)

	mockUC.EXPECT().
		SearchCars(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *rental.CarSearchRequest) ([]models.Car, error) {
			assert.Equal(t, "current", req.Location)
			assert.Equal(t, 23.7808, req.Latitude)
			assert.Equal(t, 90.4142, req.Longitude)
			assert.Equal(t, 10000.0, req.MaxDistance)
			return []models.Car{{ID: "car-1"}}, nil
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/cars/search?location=current&lat=23.7808&lng=90.4142&maxDistance=10000", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SearchCars(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var cars []models.Car
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
	assert.Len(t, cars, 1)
}

func TestGetCar(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			GetCar(gomock.Any(), "car-1").
			Return(&models.Car{ID: "car-1", Make: "Toyota"}, nil)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cars/car-1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("car-1")

		err := handler.GetCar(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			GetCar(gomock.Any(), "missing").
			Return(nil, apperrors.NotFound("car missing not found"))

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cars/missing", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		err := handler.GetCar(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHostCar(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			HostCar(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, car *models.HostCar) (string, error) {
				assert.Equal(t, "host@example.com", car.HostEmail)
				assert.Equal(t, "Toyota", car.Make)
				return "host-car-1", nil
			})

		body := `{"host_email":"host@example.com","make":"Toyota","model":"Axio","price":55}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/host-cars", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.HostCar(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "host-car-1")
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			HostCar(gomock.Any(), gomock.Any()).
			Return("", apperrors.Validation("host email is required"))

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/host-cars", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.HostCar(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateBooking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRentalUC(ctrl)
	handler := NewRentalHandler(mockUC)

	mockUC.EXPECT().
		CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking *models.Booking) (string, error) {
			assert.Equal(t, "renter@example.com", booking.Email)
			assert.Equal(t, "car-1", booking.CarID)
			return "booking-1", nil
		})

	body := `{"email":"renter@example.com","car_id":"car-1","pickup_city":"Dhaka"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateBooking(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking-1")
}

func TestUpdateBooking(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			UpdateBooking(gomock.Any(), "booking-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, update *models.BookingUpdate) error {
				assert.Equal(t, "renter@example.com", *update.Email)
				assert.Equal(t, "01711111111", *update.PhoneNumber)
				return nil
			})

		body := `{"email":"renter@example.com","phone_number":"01711111111","payment_method":"card"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/booking-1", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("booking-1")

		err := handler.UpdateBooking(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing required fields return 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUC := mocks.NewMockRentalUC(ctrl)
		handler := NewRentalHandler(mockUC)

		mockUC.EXPECT().
			UpdateBooking(gomock.Any(), "booking-1", gomock.Any()).
			Return(apperrors.Validation("phone number is required"))

		body := `{"email":"renter@example.com"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/booking-1", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("booking-1")

		err := handler.UpdateBooking(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListRecentBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRentalUC(ctrl)
	handler := NewRentalHandler(mockUC)

	mockUC.EXPECT().
		ListRecentBookings(gomock.Any()).
		Return([]*models.Booking{{ID: "booking-2"}, {ID: "booking-1"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/recent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListRecentBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var bookings []models.Booking
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 2)
}

func TestGetAdminStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockRentalUC(ctrl)
	handler := NewRentalHandler(mockUC)

	mockUC.EXPECT().
		GetAdminStats(gomock.Any()).
		Return(&models.AdminStats{HostCount: 5, CustomerCount: 42, CarCount: 17}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.GetAdminStats(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats models.AdminStats
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 5, stats.HostCount)
	assert.Equal(t, 42, stats.CustomerCount)
}
