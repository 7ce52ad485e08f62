package models

import (
	"time"
)

// TransactionStatus is the lifecycle status of a payment attempt.
// A transaction is created Pending and moves to exactly one terminal
// state; terminal states never transition again.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusSuccess   TransactionStatus = "Success"
	TransactionStatusFailed    TransactionStatus = "Failed"
	TransactionStatusCancelled TransactionStatus = "Cancelled"
)

// IsTerminal reports whether the status permits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailed || s == TransactionStatusCancelled
}

// Product types discriminate what a transaction paid for.
const (
	ProductTypeBooking    = "booking"
	ProductTypeMembership = "membership"
)

// Transaction represents a persisted payment attempt and its lifecycle
// status. The transaction ID is generated by us at initiation time and is
// the correlation key for provider callbacks.
type Transaction struct {
	TransactionID string            `json:"transaction_id" db:"transaction_id"`
	Amount        float64           `json:"amount" db:"amount"`
	Currency      string            `json:"currency" db:"currency"`
	CustomerName  string            `json:"customer_name" db:"customer_name"`
	CustomerEmail string            `json:"customer_email" db:"customer_email"`
	CustomerPhone string            `json:"customer_phone" db:"customer_phone"`
	ProductType   string            `json:"product_type" db:"product_type"`
	ProductName   string            `json:"product_name" db:"product_name"`
	BookingID     string            `json:"booking_id,omitempty" db:"booking_id"`
	PlanName      string            `json:"plan_name,omitempty" db:"plan_name"`
	StartDate     *time.Time        `json:"start_date,omitempty" db:"start_date"`
	EndDate       *time.Time        `json:"end_date,omitempty" db:"end_date"`
	PickupCity    string            `json:"pickup_city,omitempty" db:"pickup_city"`
	HostEmail     string            `json:"host_email,omitempty" db:"host_email"`
	Status        TransactionStatus `json:"status" db:"status"`
	TranDate      string            `json:"tran_date,omitempty" db:"tran_date"`
	CardType      string            `json:"card_type,omitempty" db:"card_type"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`
}

// PaymentRequest is the client payload that starts a hosted-payment-page
// flow. Booking fields and plan fields are mutually exclusive; the one
// present decides the product type.
type PaymentRequest struct {
	Price       float64    `json:"price"`
	Currency    string     `json:"currency,omitempty"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	ProductName string     `json:"productName,omitempty"`
	BookingID   string     `json:"bookingId,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	PickupCity  string     `json:"pickupCity,omitempty"`
	HostEmail   string     `json:"hostEmail,omitempty"`
	PlanName    string     `json:"planName,omitempty"`
}

// PaymentResponse carries the provider redirect URL back to the client.
type PaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// CallbackStatusValid is the provider sentinel that authorizes a success
// callback. Anything else is rejected.
const CallbackStatusValid = "VALID"

// PaymentCallback is the provider-delivered outcome notification. The
// provider posts it form-encoded; tran_id echoes the transaction ID we
// issued at initiation.
type PaymentCallback struct {
	Status   string `json:"status" form:"status"`
	TranID   string `json:"tran_id" form:"tran_id"`
	TranDate string `json:"tran_date" form:"tran_date"`
	CardType string `json:"card_type" form:"card_type"`
	Amount   string `json:"amount" form:"amount"`
}

// IntentRequest asks for a card-element client secret. Price is in major
// currency units.
type IntentRequest struct {
	Price float64 `json:"price"`
}

// IntentResponse returns the provider client secret verbatim.
type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
