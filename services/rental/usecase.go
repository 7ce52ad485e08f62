package rental

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// CarSearchRequest is the proximity search input. Location "anywhere"
// skips the geo constraint entirely.
type CarSearchRequest struct {
	Location    string
	Latitude    float64
	Longitude   float64
	MaxDistance float64 // meters
}

// RentalUC defines the interface for rental use cases
type RentalUC interface {
	ListCars(ctx context.Context, filter *models.CarFilter) (*models.CarPage, error)
	SearchCars(ctx context.Context, req *CarSearchRequest) ([]models.Car, error)
	GetCar(ctx context.Context, id string) (*models.Car, error)
	DeleteCar(ctx context.Context, id string) error

	HostCar(ctx context.Context, car *models.HostCar) (string, error)
	ListHostCars(ctx context.Context) ([]models.HostCar, error)

	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, update *models.BookingUpdate) error
	ListRecentBookings(ctx context.Context) ([]*models.Booking, error)

	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}
