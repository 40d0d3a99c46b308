package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"vidyashare/internal/infrastructure/auth"
	"vidyashare/pkg/errors"
	"vidyashare/pkg/response"
)

type AuthMiddleware struct {
	tokens *auth.TokenService
}

func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate rejects requests before any store access: a missing bearer
// token is 401, a malformed, expired or badly signed one is 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, errors.Unauthorized("Access denied. No token provided.", nil))
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return response.Error(c, errors.Unauthorized("Access denied. No token provided.", nil))
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			return response.Error(c, errors.Forbidden("Invalid token.", err))
		}

		c.Set("uid", claims.UserID)
		c.Set("email", claims.Email)

		return next(c)
	}
}
