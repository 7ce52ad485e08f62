package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/rental"
)

// PostgresRentalRepo implements the RentalRepo interface
type PostgresRentalRepo struct {
	db *sqlx.DB
}

// NewRentalRepository creates a new rental repository
func NewRentalRepository(db *sqlx.DB) rental.RentalRepo {
	return &PostgresRentalRepo{
		db: db,
	}
}

// carSortClauses maps the recognized sort options to ORDER BY clauses.
// Anything outside this map falls back to listing order.
var carSortClauses = map[string]string{
	models.CarSortPriceAsc:  "price ASC",
	models.CarSortPriceDesc: "price DESC",
	models.CarSortDateAsc:   "listed_at ASC",
	models.CarSortDateDesc:  "listed_at DESC",
}

// ListCars returns one page of the car catalog with the allow-listed
// filters applied.
func (r *PostgresRentalRepo) ListCars(ctx context.Context, filter *models.CarFilter) (*models.CarPage, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}

	addArg := func(clause string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Category != "" {
		addArg("category ILIKE '%%' || $%d || '%%'", filter.Category)
	}
	if filter.MinPrice > 0 {
		addArg("price >= $%d", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		addArg("price <= $%d", filter.MaxPrice)
	}
	if filter.SeatCount > 0 {
		addArg("seat_count >= $%d", filter.SeatCount)
	}
	if filter.WithDriver != nil {
		addArg("with_driver = $%d", *filter.WithDriver)
	}
	if filter.HomePickup != nil {
		addArg("home_pickup = $%d", *filter.HomePickup)
	}

	where := strings.Join(conditions, " AND ")

	var totalCars int
	countQuery := "SELECT COUNT(*) FROM cars WHERE " + where
	if err := r.db.GetContext(ctx, &totalCars, countQuery, args...); err != nil {
		return nil, apperrors.Persistence("failed to count cars", err)
	}

	orderBy, ok := carSortClauses[filter.Sort]
	if !ok {
		orderBy = "id ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	listQuery := fmt.Sprintf(
		"SELECT * FROM cars WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		where, orderBy, len(args)-1, len(args),
	)

	cars := []models.Car{}
	if err := r.db.SelectContext(ctx, &cars, listQuery, args...); err != nil {
		return nil, apperrors.Persistence("failed to list cars", err)
	}

	totalPages := (totalCars + filter.Limit - 1) / filter.Limit

	return &models.CarPage{
		Cars:        cars,
		TotalCars:   totalCars,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
	}, nil
}

// ListCarsByGeohash returns cars whose geohash starts with any of the
// given prefixes. The caller narrows the result to the exact radius.
func (r *PostgresRentalRepo) ListCarsByGeohash(ctx context.Context, prefixes []string) ([]models.Car, error) {
	if len(prefixes) == 0 {
		return []models.Car{}, nil
	}

	conditions := make([]string, 0, len(prefixes))
	args := make([]interface{}, 0, len(prefixes))
	for i, prefix := range prefixes {
		conditions = append(conditions, fmt.Sprintf("geohash LIKE $%d || '%%'", i+1))
		args = append(args, prefix)
	}

	query := "SELECT * FROM cars WHERE " + strings.Join(conditions, " OR ")

	cars := []models.Car{}
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, apperrors.Persistence("failed to search cars by geohash", err)
	}

	return cars, nil
}

// ListAllCars returns the full catalog
func (r *PostgresRentalRepo) ListAllCars(ctx context.Context) ([]models.Car, error) {
	cars := []models.Car{}
	if err := r.db.SelectContext(ctx, &cars, "SELECT * FROM cars"); err != nil {
		return nil, apperrors.Persistence("failed to list cars", err)
	}
	return cars, nil
}

// GetCar fetches a car by id
func (r *PostgresRentalRepo) GetCar(ctx context.Context, id string) (*models.Car, error) {
	var car models.Car
	err := r.db.GetContext(ctx, &car, "SELECT * FROM cars WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("car %s not found", id))
		}
		return nil, apperrors.Persistence("failed to get car", err)
	}
	return &car, nil
}

// DeleteCar removes a car listing
func (r *PostgresRentalRepo) DeleteCar(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cars WHERE id = $1", id)
	if err != nil {
		return apperrors.Persistence("failed to delete car", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Persistence("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("car %s not found", id))
	}

	return nil
}

// CreateHostCar records a host's vehicle submission
func (r *PostgresRentalRepo) CreateHostCar(ctx context.Context, car *models.HostCar) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO host_cars (
			id, host_email, make, model, category, price, seat_count, description, created_at
		) VALUES (
			:id, :host_email, :make, :model, :category, :price, :seat_count, :description, :created_at
		)
	`, car)

	if err != nil {
		return apperrors.Persistence("failed to create host car", err)
	}

	return nil
}

// ListHostCars returns all host submissions, newest first
func (r *PostgresRentalRepo) ListHostCars(ctx context.Context) ([]models.HostCar, error) {
	cars := []models.HostCar{}
	err := r.db.SelectContext(ctx, &cars, "SELECT * FROM host_cars ORDER BY created_at DESC")
	if err != nil {
		return nil, apperrors.Persistence("failed to list host cars", err)
	}
	return cars, nil
}

// CreateBooking persists a new booking
func (r *PostgresRentalRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO bookings (
			id, car_id, email, phone_number, drivers_license, payment_method,
			start_date, end_date, pickup_city, total_price, status, host_approval,
			created_at, updated_at
		) VALUES (
			:id, :car_id, :email, :phone_number, :drivers_license, :payment_method,
			:start_date, :end_date, :pickup_city, :total_price, :status, :host_approval,
			:created_at, :updated_at
		)
	`, booking)

	if err != nil {
		return apperrors.Persistence("failed to create booking", err)
	}

	return nil
}

// GetBooking fetches a booking by id
func (r *PostgresRentalRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.GetContext(ctx, &booking, "SELECT * FROM bookings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("booking %s not found", id))
		}
		return nil, apperrors.Persistence("failed to get booking", err)
	}
	return &booking, nil
}

// ListBookings returns all bookings
func (r *PostgresRentalRepo) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	bookings := []*models.Booking{}
	err := r.db.SelectContext(ctx, &bookings, "SELECT * FROM bookings ORDER BY created_at DESC")
	if err != nil {
		return nil, apperrors.Persistence("failed to list bookings", err)
	}
	return bookings, nil
}

// UpdateBooking applies the recognized mutable fields. Each field is
// named explicitly; nothing else on the record can change through this
// path.
func (r *PostgresRentalRepo) UpdateBooking(ctx context.Context, id string, update *models.BookingUpdate) error {
	sets := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Email != nil {
		addSet("email", *update.Email)
	}
	if update.PhoneNumber != nil {
		addSet("phone_number", *update.PhoneNumber)
	}
	if update.DriversLicense != nil {
		addSet("drivers_license", *update.DriversLicense)
	}
	if update.PaymentMethod != nil {
		addSet("payment_method", *update.PaymentMethod)
	}

	if len(sets) == 0 {
		return apperrors.Validation("no recognized fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE bookings SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Persistence("failed to update booking", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Persistence("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("booking %s not found", id))
	}

	return nil
}

// ListRecentBookings returns the most recent bookings by start date
func (r *PostgresRentalRepo) ListRecentBookings(ctx context.Context, limit int) ([]*models.Booking, error) {
	bookings := []*models.Booking{}
	err := r.db.SelectContext(ctx, &bookings, `
		SELECT * FROM bookings ORDER BY start_date DESC NULLS LAST LIMIT $1
	`, limit)
	if err != nil {
		return nil, apperrors.Persistence("failed to list recent bookings", err)
	}
	return bookings, nil
}

// GetAdminStats returns host/customer/car counts for the dashboard
func (r *PostgresRentalRepo) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	var stats models.AdminStats

	err := r.db.GetContext(ctx, &stats.HostCount,
		"SELECT COUNT(*) FROM users WHERE role = $1", models.RoleHost)
	if err != nil {
		return nil, apperrors.Persistence("failed to count hosts", err)
	}

	err = r.db.GetContext(ctx, &stats.CustomerCount,
		"SELECT COUNT(*) FROM users WHERE role NOT IN ($1, $2)", models.RoleAdmin, models.RoleHost)
	if err != nil {
		return nil, apperrors.Persistence("failed to count customers", err)
	}

	err = r.db.GetContext(ctx, &stats.CarCount, "SELECT COUNT(*) FROM cars")
	if err != nil {
		return nil, apperrors.Persistence("failed to count cars", err)
	}

	return &stats, nil
}
