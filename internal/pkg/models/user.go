package models

import (
	"time"
)

// User roles
const (
	RoleAdmin    = "Admin"
	RoleHost     = "Host"
	RoleCustomer = "Customer"
)

// User represents a marketplace account
type User struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"`
	Role          string    `json:"role" db:"role"`
	EmailVerified bool      `json:"email_verified" db:"email_verified"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserUpdate is the set of recognized mutable fields for a user profile
type UserUpdate struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// VerificationRequest asks for an email verification code
type VerificationRequest struct {
	Email string `json:"email"`
}

// VerifyCodeRequest submits a verification code for checking
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// ChatTokenRequest asks for a short-lived chat token
type ChatTokenRequest struct {
	Email string `json:"email"`
	Room  string `json:"room"`
}

// ChatTokenResponse carries the issued chat token
type ChatTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
