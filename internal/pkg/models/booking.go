package models

import (
	"time"
)

// Booking statuses
const (
	BookingStatusPending = "pending"
	BookingStatusPaid    = "paid"
)

// HostApprovalPendingReview marks a paid booking awaiting host review.
// Set exactly once when the paying transaction reaches Success.
const HostApprovalPendingReview = "pending_review"

// Booking represents a car reservation
type Booking struct {
	ID             string     `json:"id" db:"id"`
	CarID          string     `json:"car_id" db:"car_id"`
	Email          string     `json:"email" db:"email"`
	PhoneNumber    string     `json:"phone_number" db:"phone_number"`
	DriversLicense string     `json:"drivers_license" db:"drivers_license"`
	PaymentMethod  string     `json:"payment_method" db:"payment_method"`
	StartDate      *time.Time `json:"start_date" db:"start_date"`
	EndDate        *time.Time `json:"end_date" db:"end_date"`
	PickupCity     string     `json:"pickup_city" db:"pickup_city"`
	TotalPrice     float64    `json:"total_price" db:"total_price"`
	Status         string     `json:"status" db:"status"`
	HostApproval   string     `json:"host_approval" db:"host_approval"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// BookingUpdate is the set of recognized mutable fields for an existing
// booking. Only the named fields can change; a nil field is left as is.
type BookingUpdate struct {
	Email          *string `json:"email"`
	PhoneNumber    *string `json:"phone_number"`
	DriversLicense *string `json:"drivers_license"`
	PaymentMethod  *string `json:"payment_method"`
}
