package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/constants"
	"github.com/urbandrive/urbandrive/internal/pkg/database"
	"github.com/urbandrive/urbandrive/services/user"
)

// RedisCodeRepo implements the CodeRepo interface on Redis. Codes are
// stored hashed and expire with the key TTL.
type RedisCodeRepo struct {
	redisClient *database.RedisClient
}

// NewCodeRepository creates a new verification-code repository
func NewCodeRepository(redisClient *database.RedisClient) user.CodeRepo {
	return &RedisCodeRepo{
		redisClient: redisClient,
	}
}

func codeKey(email string) string {
	return fmt.Sprintf(constants.KeyVerificationCode, email)
}

// StoreVerificationCode stores the hashed code. A fresh request
// overwrites any earlier code for the same account.
func (r *RedisCodeRepo) StoreVerificationCode(ctx context.Context, email, codeHash string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, codeKey(email), codeHash, ttl); err != nil {
		return apperrors.Persistence("failed to store verification code", err)
	}
	return nil
}

// GetVerificationCode returns the stored hash, or NotFound once the key
// has expired or was never set.
func (r *RedisCodeRepo) GetVerificationCode(ctx context.Context, email string) (string, error) {
	hash, err := r.redisClient.Get(ctx, codeKey(email))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.NotFound("verification code not found or expired")
		}
		return "", apperrors.Persistence("failed to get verification code", err)
	}
	return hash, nil
}

// DeleteVerificationCode removes a consumed code
func (r *RedisCodeRepo) DeleteVerificationCode(ctx context.Context, email string) error {
	if err := r.redisClient.Delete(ctx, codeKey(email)); err != nil {
		return apperrors.Persistence("failed to delete verification code", err)
	}
	return nil
}
