package models

import (
	"time"
)

// Car represents a rentable vehicle listing
type Car struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Make       string    `json:"make" db:"make"`
	Model      string    `json:"model" db:"model"`
	Category   string    `json:"category" db:"category"`
	Price      float64   `json:"price" db:"price"`
	SeatCount  int       `json:"seat_count" db:"seat_count"`
	WithDriver bool      `json:"with_driver" db:"with_driver"`
	HomePickup bool      `json:"home_pickup" db:"home_pickup"`
	Latitude   float64   `json:"latitude" db:"latitude"`
	Longitude  float64   `json:"longitude" db:"longitude"`
	Geohash    string    `json:"-" db:"geohash"`
	ListedAt   time.Time `json:"listed_at" db:"listed_at"`
}

// Car sort options recognized by the listing endpoint
const (
	CarSortPriceAsc  = "price-asc"
	CarSortPriceDesc = "price-desc"
	CarSortDateAsc   = "date-asc"
	CarSortDateDesc  = "date-desc"
)

// CarFilter is the allow-listed set of listing filters
type CarFilter struct {
	Page       int
	Limit      int
	Category   string
	MinPrice   float64
	MaxPrice   float64
	SeatCount  int
	WithDriver *bool
	HomePickup *bool
	Sort       string
}

// CarPage is a paginated car listing response
type CarPage struct {
	Cars        []Car `json:"cars"`
	TotalCars   int   `json:"totalCars"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// AdminStats is the marketplace overview served to the admin dashboard
type AdminStats struct {
	HostCount     int `json:"hostCount"`
	CustomerCount int `json:"customerCount"`
	CarCount      int `json:"carCount"`
}

// HostCar is a vehicle submitted by a host for listing
type HostCar struct {
	ID          string    `json:"id" db:"id"`
	HostEmail   string    `json:"host_email" db:"host_email"`
	Make        string    `json:"make" db:"make"`
	Model       string    `json:"model" db:"model"`
	Category    string    `json:"category" db:"category"`
	Price       float64   `json:"price" db:"price"`
	SeatCount   int       `json:"seat_count" db:"seat_count"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
