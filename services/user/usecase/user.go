package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/jwt"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/services/user"
)

const (
	verificationCodeTTL  = time.Hour
	verificationCodeMax  = 1000000 // codes are 6 digits, zero padded
	verificationSubject  = "Your urbanDrive verification code"
	verificationBodyTmpl = "Your verification code is %s. It expires in 1 hour."
)

// UserUseCase implements the user.UserUC interface
type UserUseCase struct {
	cfg      *models.Config
	repo     user.UserRepo
	codeRepo user.CodeRepo
	userGW   user.UserGW
}

// NewUserUC creates a new user use case
func NewUserUC(cfg *models.Config, repo user.UserRepo, codeRepo user.CodeRepo, userGW user.UserGW) user.UserUC {
	return &UserUseCase{
		cfg:      cfg,
		repo:     repo,
		codeRepo: codeRepo,
		userGW:   userGW,
	}
}

// CreateUser registers an account. Re-registering an email is not an
// error; the existing account is returned unchanged.
func (uc *UserUseCase) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	if u.Email == "" {
		return nil, apperrors.Validation("email is required")
	}

	existing, err := uc.repo.GetUserByEmail(ctx, u.Email)
	if err == nil {
		return existing, nil
	}
	if !apperrors.Is(err, apperrors.KindNotFound) {
		return nil, err
	}

	now := time.Now()
	u.ID = uuid.New().String()
	if u.Role == "" {
		u.Role = models.RoleCustomer
	}
	u.EmailVerified = false
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := uc.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		logger.String("user_id", u.ID),
		logger.String("email", u.Email),
		logger.String("role", u.Role))

	return u, nil
}

// GetUser fetches an account by email
func (uc *UserUseCase) GetUser(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, apperrors.Validation("email is required")
	}
	return uc.repo.GetUserByEmail(ctx, email)
}

// ListUsers returns all accounts
func (uc *UserUseCase) ListUsers(ctx context.Context) ([]models.User, error) {
	return uc.repo.ListUsers(ctx)
}

// UpdateUser merges the recognized mutable fields into an account
func (uc *UserUseCase) UpdateUser(ctx context.Context, email string, update *models.UserUpdate) error {
	if email == "" {
		return apperrors.Validation("email is required")
	}
	if update.Name == nil && update.Role == nil {
		return apperrors.Validation("nothing to update")
	}
	if update.Role != nil {
		switch *update.Role {
		case models.RoleAdmin, models.RoleHost, models.RoleCustomer:
		default:
			return apperrors.Validationf("unknown role %q", *update.Role)
		}
	}

	return uc.repo.UpdateUser(ctx, email, update)
}

// SendVerificationCode issues a fresh 6-digit code for the account and
// queues the email carrying it. Only the bcrypt hash is stored; the
// plaintext code exists solely in the outbound mail.
func (uc *UserUseCase) SendVerificationCode(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.Validation("email is required")
	}

	if _, err := uc.repo.GetUserByEmail(ctx, email); err != nil {
		return err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return apperrors.Persistence("failed to generate verification code", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return apperrors.Persistence("failed to hash verification code", err)
	}

	if err := uc.codeRepo.StoreVerificationCode(ctx, email, string(hash), verificationCodeTTL); err != nil {
		return err
	}

	job := models.EmailJob{
		To:      email,
		Subject: verificationSubject,
		Body:    fmt.Sprintf(verificationBodyTmpl, code),
	}
	if err := uc.userGW.PublishEmailJob(ctx, job); err != nil {
		return err
	}

	logger.Info("Verification code issued", logger.String("email", email))
	return nil
}

// VerifyCode checks a submitted code against the stored hash. A match
// marks the account email-verified and consumes the code.
func (uc *UserUseCase) VerifyCode(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return apperrors.Validation("email and code are required")
	}

	hash, err := uc.codeRepo.GetVerificationCode(ctx, email)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)); err != nil {
		return apperrors.Authorization("invalid verification code")
	}

	if err := uc.repo.MarkEmailVerified(ctx, email); err != nil {
		return err
	}

	if err := uc.codeRepo.DeleteVerificationCode(ctx, email); err != nil {
		// The key expires on its own; a failed delete only widens the
		// replay window.
		logger.Warn("Failed to delete consumed verification code",
			logger.String("email", email),
			logger.Err(err))
	}

	logger.Info("Email verified", logger.String("email", email))
	return nil
}

// IssueChatToken signs a short-lived token carrying the account's role
// and the requested room
func (uc *UserUseCase) IssueChatToken(ctx context.Context, req *models.ChatTokenRequest) (*models.ChatTokenResponse, error) {
	if req.Email == "" {
		return nil, apperrors.Validation("email is required")
	}
	if req.Room == "" {
		return nil, apperrors.Validation("room is required")
	}

	account, err := uc.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := jwt.GenerateToken(account.Email, account.Role, req.Room, uc.cfg)
	if err != nil {
		return nil, apperrors.Persistence("failed to sign chat token", err)
	}

	return &models.ChatTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// ListMembershipPlans returns the purchasable tiers
func (uc *UserUseCase) ListMembershipPlans(ctx context.Context) ([]models.MembershipPlan, error) {
	return uc.repo.ListMembershipPlans(ctx)
}

// ListEnrollments returns active enrollments, optionally for one account
func (uc *UserUseCase) ListEnrollments(ctx context.Context, email string) ([]models.Membership, error) {
	return uc.repo.ListEnrollments(ctx, email)
}

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(verificationCodeMax))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
