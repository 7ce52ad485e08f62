package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/urbandrive/urbandrive/internal/pkg/jwt"
	"github.com/urbandrive/urbandrive/internal/pkg/models"
	"github.com/urbandrive/urbandrive/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT bearer authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			email, ok := (*claims)["email"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing email claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			c.Set("user_email", email)
			c.Set("user_role", role)

			return next(c)
		}
	}
}
