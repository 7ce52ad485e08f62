package user

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// UserUC defines the interface for user use cases
type UserUC interface {
	// CreateUser registers an account, or returns the existing one when
	// the email is already registered.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, email string, update *models.UserUpdate) error

	SendVerificationCode(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error

	IssueChatToken(ctx context.Context, req *models.ChatTokenRequest) (*models.ChatTokenResponse, error)

	ListMembershipPlans(ctx context.Context) ([]models.MembershipPlan, error)
	ListEnrollments(ctx context.Context, email string) ([]models.Membership, error)
}
