package models

import (
	"time"
)

// MembershipStatusActive marks an enrollment paid for and in effect.
const MembershipStatusActive = "active"

// MembershipPlan is a purchasable membership tier
type MembershipPlan struct {
	ID           string  `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Price        float64 `json:"price" db:"price"`
	DurationDays int     `json:"duration_days" db:"duration_days"`
	Description  string  `json:"description" db:"description"`
}

// Membership is a customer's enrollment in a plan, created when the
// paying transaction is reconciled.
type Membership struct {
	ID            string    `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	PlanName      string    `json:"plan_name" db:"plan_name"`
	TransactionID string    `json:"transaction_id" db:"transaction_id"`
	PurchaseDate  time.Time `json:"purchase_date" db:"purchase_date"`
	ExpiryDate    time.Time `json:"expiry_date" db:"expiry_date"`
	Status        string    `json:"status" db:"status"`
}
