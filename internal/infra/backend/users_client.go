package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"agora/config"
	"agora/internal/domain/entity"
	"agora/internal/domain/gateway"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// usersClient implements gateway.UsersGateway over the Users backend's REST
// surface.
type usersClient struct {
	*client
}

// NewUsersClient is the constructor for the Users backend gateway.
func NewUsersClient(cfg *config.Config, logger *slog.Logger) gateway.UsersGateway {
	return &usersClient{
		client: newClient("users", cfg.Backends.Users.BaseURL, cfg.Backends.Timeout, logger),
	}
}

func (c *usersClient) Get(ctx context.Context, id uuid.UUID, cred gateway.Credential) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/" + id.String(),
		cred:   cred,
	}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *usersClient) List(ctx context.Context, cred gateway.Credential) ([]entity.User, error) {
	var payload json.RawMessage
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users",
		cred:   cred,
	}, &payload); err != nil {
		return nil, err
	}

	// The Users backend paginates with a {"data": [...]} envelope; older
	// deployments answered with a bare array.
	var envelope struct {
		Data []entity.User `json:"data"`
	}
	if err := json.Unmarshal(payload, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var users []entity.User
	if err := json.Unmarshal(payload, &users); err != nil {
		return nil, errors.Wrap(err, "decode users list")
	}

	return users, nil
}

func (c *usersClient) Create(ctx context.Context, draft *gateway.NewUser) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/users/create_user",
		body:   draft,
	}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *usersClient) Update(ctx context.Context, id uuid.UUID, patch gateway.UserPatch, cred gateway.Credential) (*entity.User, error) {
	var user entity.User
	if err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   "/users/" + id.String(),
		body:   patch,
		cred:   cred,
	}, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (c *usersClient) Delete(ctx context.Context, id uuid.UUID, cred gateway.Credential) (json.RawMessage, error) {
	var ack json.RawMessage
	if err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   "/users/" + id.String(),
		cred:   cred,
	}, &ack); err != nil {
		return nil, err
	}

	return ack, nil
}

func (c *usersClient) ExchangeOAuthCallback(ctx context.Context, rawQuery string) (json.RawMessage, error) {
	path := "/auth/google/callback"
	if rawQuery != "" {
		path += "?" + rawQuery
	}

	var token json.RawMessage
	if err := c.do(ctx, request{
		method: http.MethodGet,
		path:   path,
	}, &token); err != nil {
		return nil, err
	}

	return token, nil
}
