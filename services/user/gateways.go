package user

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/models"
)

// UserGW defines the interface for user gateway operations
type UserGW interface {
	// PublishEmailJob queues an outbound email for the mail worker.
	PublishEmailJob(ctx context.Context, job models.EmailJob) error
}
