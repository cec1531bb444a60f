package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agora/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func authTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret

	return cfg
}

func signedToken(t *testing.T, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func runAuthenticate(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(authTestConfig()).Authenticate(next)(c)
	require.NoError(t, err)

	return rec, reached
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	rec, reached := runAuthenticate(t, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_TOKEN")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, reached := runAuthenticate(t, "Token abc")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidSignature(t *testing.T) {
	rec, reached := runAuthenticate(t, "Bearer "+signedToken(t, "other-secret"))

	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	rec, reached := runAuthenticate(t, "Bearer "+signedToken(t, testSecret))

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}
