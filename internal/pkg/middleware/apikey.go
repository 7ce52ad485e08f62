package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// APIKeyMiddleware validates API keys for provider-facing and
// service-to-service routes.
type APIKeyMiddleware struct {
	keys map[string]string
}

// NewAPIKeyMiddleware creates a new API key middleware from configuration
func NewAPIKeyMiddleware(config *models.APIKeyConfig) *APIKeyMiddleware {
	return &APIKeyMiddleware{keys: config.Keys}
}

// ValidateAPIKey checks that the presented key belongs to one of the
// allowed callers.
func (m *APIKeyMiddleware) ValidateAPIKey(allowedCallers ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			validKey := false
			for _, caller := range allowedCallers {
				if m.keys[caller] != "" && strings.EqualFold(apiKey, m.keys[caller]) {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
