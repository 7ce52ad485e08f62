package rental

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// RentalRepo defines the interface for car and booking store operations
type RentalRepo interface {
	ListCars(ctx context.Context, filter *models.CarFilter) (*models.CarPage, error)
	ListCarsByGeohash(ctx context.Context, prefixes []string) ([]models.Car, error)
	ListAllCars(ctx context.Context) ([]models.Car, error)
	GetCar(ctx context.Context, id string) (*models.Car, error)
	DeleteCar(ctx context.Context, id string) error

	CreateHostCar(ctx context.Context, car *models.HostCar) error
	ListHostCars(ctx context.Context) ([]models.HostCar, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)
	// UpdateBooking applies the recognized mutable fields only.
	UpdateBooking(ctx context.Context, id string, update *models.BookingUpdate) error
	ListRecentBookings(ctx context.Context, limit int) ([]*models.Booking, error)

	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}
