package middleware

import (
	"strings"

	"agora/config"
	"agora/internal/delivery/http/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// KeyClaims is the echo context key holding verified token claims.
	KeyClaims = "claims"
)

// AuthMiddleware verifies bearer tokens for the endpoints that need a
// verified identity. The composite operations themselves never look at the
// token; they only forward it verbatim.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate validates the JWT access token and stores its claims on the
// request context. A missing token answers 401, an invalid one 403.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Missing token")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "MISSING_TOKEN", "Invalid token format, must be Bearer token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
			}

			return []byte(m.cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			return response.Forbidden(c, "INVALID_TOKEN", "Invalid token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Forbidden(c, "INVALID_TOKEN", "Failed to parse token claims")
		}

		c.Set(KeyClaims, claims)

		return next(c)
	}
}
