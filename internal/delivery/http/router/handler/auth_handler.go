package handler

import (
	"net/http"

	"agora/config"
	"agora/internal/delivery/http/response"
	"agora/internal/domain/gateway"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler proxies the Google Sign-In flow to the Users backend, which
// owns the OAuth client registration and issues the tokens.
type AuthHandler struct {
	cfg   *config.Config
	users gateway.UsersGateway
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(cfg *config.Config, users gateway.UsersGateway) *AuthHandler {
	return &AuthHandler{
		cfg:   cfg,
		users: users,
	}
}

// GoogleLogin redirects the browser to the Users backend's Google OAuth
// entry point.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	return c.Redirect(http.StatusTemporaryRedirect, h.cfg.Backends.Users.BaseURL+"/auth/google")
}

// GoogleCallback forwards Google's callback query string to the Users backend
// and relays its token response unchanged.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	rawQuery := c.Request().URL.RawQuery
	if rawQuery == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing OAuth callback parameters")
	}

	payload, err := h.users.ExchangeOAuthCallback(c.Request().Context(), rawQuery)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSONBlob(http.StatusOK, payload)
}
