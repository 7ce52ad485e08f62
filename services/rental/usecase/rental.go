package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/internal/utils"
	"github.com/urbandrive/urbandrive/services/rental"
)

const (
	defaultPage  = 1
	defaultLimit = 6

	defaultSearchRadiusMeters = 5000
	recentBookingsLimit       = 4
)

// RentalUseCase implements the rental.RentalUC interface
type RentalUseCase struct {
	cfg  *models.Config
	repo rental.RentalRepo
}

// NewRentalUC creates a new rental use case
func NewRentalUC(cfg *models.Config, repo rental.RentalRepo) rental.RentalUC {
	return &RentalUseCase{
		cfg:  cfg,
		repo: repo,
	}
}

// ListCars returns one catalog page after normalizing pagination
func (uc *RentalUseCase) ListCars(ctx context.Context, filter *models.CarFilter) (*models.CarPage, error) {
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}

	return uc.repo.ListCars(ctx, filter)
}

// SearchCars runs a proximity search via geohash cells, then narrows
// the candidates to the exact radius. Location "anywhere" returns the
// whole catalog.
func (uc *RentalUseCase) SearchCars(ctx context.Context, req *rental.CarSearchRequest) ([]models.Car, error) {
	if req.Location != "current" {
		return uc.repo.ListAllCars(ctx)
	}

	radius := req.MaxDistance
	if radius <= 0 {
		radius = defaultSearchRadiusMeters
	}

	center := utils.GeoPoint{Latitude: req.Latitude, Longitude: req.Longitude}
	precision := utils.PrecisionForRadius(radius)
	cell := utils.EncodeLocation(center, precision)
	prefixes := append(utils.GetNeighbors(cell), cell)

	candidates, err := uc.repo.ListCarsByGeohash(ctx, prefixes)
	if err != nil {
		return nil, err
	}

	radiusKm := radius / 1000.0
	cars := make([]models.Car, 0, len(candidates))
	for _, car := range candidates {
		point := utils.GeoPoint{Latitude: car.Latitude, Longitude: car.Longitude}
		if utils.CalculateDistance(center, point) <= radiusKm {
			cars = append(cars, car)
		}
	}

	return cars, nil
}

// GetCar fetches a car listing by id
func (uc *RentalUseCase) GetCar(ctx context.Context, id string) (*models.Car, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.Validation("invalid car ID format")
	}
	return uc.repo.GetCar(ctx, id)
}

// DeleteCar removes a car listing
func (uc *RentalUseCase) DeleteCar(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.Validation("invalid car ID format")
	}

	if err := uc.repo.DeleteCar(ctx, id); err != nil {
		return err
	}

	logger.Info("Car listing deleted", logger.String("car_id", id))
	return nil
}

// HostCar records a host vehicle submission and returns its id
func (uc *RentalUseCase) HostCar(ctx context.Context, car *models.HostCar) (string, error) {
	if car.HostEmail == "" {
		return "", apperrors.Validation("host email is required")
	}
	if car.Make == "" || car.Model == "" {
		return "", apperrors.Validation("car make and model are required")
	}

	car.ID = uuid.New().String()
	car.CreatedAt = time.Now()

	if err := uc.repo.CreateHostCar(ctx, car); err != nil {
		return "", err
	}

	return car.ID, nil
}

// ListHostCars returns all host submissions
func (uc *RentalUseCase) ListHostCars(ctx context.Context) ([]models.HostCar, error) {
	return uc.repo.ListHostCars(ctx)
}

// CreateBooking persists a new booking and returns its id
func (uc *RentalUseCase) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.Email == "" {
		return "", apperrors.Validation("email is required")
	}
	if booking.CarID == "" {
		return "", apperrors.Validation("car ID is required")
	}

	now := time.Now()
	booking.ID = uuid.New().String()
	booking.Status = models.BookingStatusPending
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := uc.repo.CreateBooking(ctx, booking); err != nil {
		return "", err
	}

	logger.Info("Booking created",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", booking.CarID),
		logger.String("email", booking.Email))

	return booking.ID, nil
}

// GetBooking fetches a booking by id
func (uc *RentalUseCase) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.Validation("invalid booking ID format")
	}
	return uc.repo.GetBooking(ctx, id)
}

// ListBookings returns all bookings
func (uc *RentalUseCase) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return uc.repo.ListBookings(ctx)
}

// UpdateBooking merges the recognized mutable fields into an existing
// booking. Email, phone number and payment method must all be present;
// anything outside the recognized set never reaches the store.
func (uc *RentalUseCase) UpdateBooking(ctx context.Context, id string, update *models.BookingUpdate) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.Validation("invalid booking ID format")
	}
	if update.Email == nil || *update.Email == "" {
		return apperrors.Validation("email is required")
	}
	if update.PhoneNumber == nil || *update.PhoneNumber == "" {
		return apperrors.Validation("phone number is required")
	}
	if update.PaymentMethod == nil || *update.PaymentMethod == "" {
		return apperrors.Validation("payment method is required")
	}

	return uc.repo.UpdateBooking(ctx, id, update)
}

// ListRecentBookings returns the latest bookings for the dashboard
func (uc *RentalUseCase) ListRecentBookings(ctx context.Context) ([]*models.Booking, error) {
	return uc.repo.ListRecentBookings(ctx, recentBookingsLimit)
}

// GetAdminStats returns marketplace counts
func (uc *RentalUseCase) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	return uc.repo.GetAdminStats(ctx)
}
