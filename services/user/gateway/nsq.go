package gateway

import (
	"context"

	"github.com/urbandrive/urbandrive/internal/pkg/apperrors"
	"github.com/urbandrive/urbandrive/internal/pkg/logger"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	nsqpkg "github.com/urbandrive/urbandrive/internal/pkg/nsq"
	"github.com/urbandrive/urbandrive/services/user"
)

// UserGW implements the user.UserGW interface
type UserGW struct {
	producer   *nsqpkg.Producer
	emailTopic string
}

// NewUserGW creates a new user gateway
func NewUserGW(producer *nsqpkg.Producer, emailTopic string) user.UserGW {
	return &UserGW{
		producer:   producer,
		emailTopic: emailTopic,
	}
}

// PublishEmailJob queues an outbound email for the mail worker
func (g *UserGW) PublishEmailJob(_ context.Context, job models.EmailJob) error {
	if err := g.producer.Publish(g.emailTopic, job); err != nil {
		return apperrors.Gateway("failed to queue email job", err)
	}

	logger.Info("Email job queued",
		logger.String("topic", g.emailTopic),
		logger.String("to", job.To))

	return nil
}
