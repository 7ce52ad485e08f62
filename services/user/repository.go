package user

import (
	"context"
	"time"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// UserRepo defines the interface for user and membership store operations
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser applies the recognized mutable fields only.
	UpdateUser(ctx context.Context, email string, update *models.UserUpdate) error
	MarkEmailVerified(ctx context.Context, email string) error

	ListMembershipPlans(ctx context.Context) ([]models.MembershipPlan, error)
	ListEnrollments(ctx context.Context, email string) ([]models.Membership, error)
}

// CodeRepo stores verification codes hashed, with a bounded lifetime.
type CodeRepo interface {
	StoreVerificationCode(ctx context.Context, email, codeHash string, ttl time.Duration) error
	GetVerificationCode(ctx context.Context, email string) (string, error)
	DeleteVerificationCode(ctx context.Context, email string) error
}
