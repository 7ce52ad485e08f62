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
	"github.com/urbandrive/urbandrive/services/user"
)

// PostgresUserRepo implements the UserRepo interface
type PostgresUserRepo struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) user.UserRepo {
	return &PostgresUserRepo{
		db: db,
	}
}

// CreateUser persists a new account
func (r *PostgresUserRepo) CreateUser(ctx context.Context, u *models.User) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO users (
			id, name, email, role, email_verified, created_at, updated_at
		) VALUES (
			:id, :name, :email, :role, :email_verified, :created_at, :updated_at
		)
	`, u)

	if err != nil {
		return apperrors.Persistence("failed to create user", err)
	}

	return nil
}

// GetUserByEmail fetches an account by email
func (r *PostgresUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("user %s not found", email))
		}
		return nil, apperrors.Persistence("failed to get user", err)
	}
	return &u, nil
}

// ListUsers returns all accounts, newest first
func (r *PostgresUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, "SELECT * FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, apperrors.Persistence("failed to list users", err)
	}
	return users, nil
}

// UpdateUser applies the recognized mutable fields. Each field is named
// explicitly; nothing else on the record can change through this path.
func (r *PostgresUserRepo) UpdateUser(ctx context.Context, email string, update *models.UserUpdate) error {
	sets := []string{}
	args := []interface{}{}

	addSet := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		addSet("name", *update.Name)
	}
	if update.Role != nil {
		addSet("role", *update.Role)
	}

	if len(sets) == 0 {
		return apperrors.Validation("no recognized fields to update")
	}

	args = append(args, email)
	query := fmt.Sprintf(
		"UPDATE users SET %s, updated_at = NOW() WHERE email = $%d",
		strings.Join(sets, ", "), len(args),
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.Persistence("failed to update user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Persistence("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("user %s not found", email))
	}

	return nil
}

// MarkEmailVerified flips the verification flag for an account
func (r *PostgresUserRepo) MarkEmailVerified(ctx context.Context, email string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE email = $1", email)
	if err != nil {
		return apperrors.Persistence("failed to mark email verified", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Persistence("failed to get rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound(fmt.Sprintf("user %s not found", email))
	}

	return nil
}

// ListMembershipPlans returns the purchasable tiers, cheapest first
func (r *PostgresUserRepo) ListMembershipPlans(ctx context.Context) ([]models.MembershipPlan, error) {
	plans := []models.MembershipPlan{}
	err := r.db.SelectContext(ctx, &plans, "SELECT * FROM membership_plans ORDER BY price ASC")
	if err != nil {
		return nil, apperrors.Persistence("failed to list membership plans", err)
	}
	return plans, nil
}

// ListEnrollments returns active enrollments, optionally narrowed to one
// account. Enrollment rows are written by the payment reconciliation
// linkage, never by this service.
func (r *PostgresUserRepo) ListEnrollments(ctx context.Context, email string) ([]models.Membership, error) {
	memberships := []models.Membership{}

	query := "SELECT * FROM memberships WHERE status = $1"
	args := []interface{}{models.MembershipStatusActive}
	if email != "" {
		query += " AND email = $2"
		args = append(args, email)
	}
	query += " ORDER BY purchase_date DESC"

	if err := r.db.SelectContext(ctx, &memberships, query, args...); err != nil {
		return nil, apperrors.Persistence("failed to list enrollments", err)
	}

	return memberships, nil
}
