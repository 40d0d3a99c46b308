package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyashare/internal/infrastructure/auth"
)

func invokeAuthenticated(t *testing.T, m *AuthMiddleware, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	m := NewAuthMiddleware(tokens)

	token, err := tokens.Issue("user-1", "asha@example.com")
	require.NoError(t, err)

	rec, c := invokeAuthenticated(t, m, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", c.Get("uid"))
	assert.Equal(t, "asha@example.com", c.Get("email"))
}

func TestAuthenticateMissingToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	m := NewAuthMiddleware(tokens)

	rec, _ := invokeAuthenticated(t, m, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Access denied. No token provided."}`, rec.Body.String())

	rec, _ = invokeAuthenticated(t, m, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = invokeAuthenticated(t, m, "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	m := NewAuthMiddleware(tokens)

	rec, _ := invokeAuthenticated(t, m, "Bearer not.a.token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token."}`, rec.Body.String())

	// Signed with a different secret.
	other := auth.NewTokenService("other-secret", time.Hour)
	token, err := other.Issue("user-1", "asha@example.com")
	require.NoError(t, err)

	rec, _ = invokeAuthenticated(t, m, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
