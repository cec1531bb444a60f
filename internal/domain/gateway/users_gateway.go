package gateway

import (
	"context"
	"encoding/json"

	"agora/internal/domain/entity"

	"github.com/google/uuid"
)

// NewUser is the create payload forwarded unchanged to the Users backend.
type NewUser struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
	Merch       string `json:"merch"`
}

// UserPatch is an opaque partial update forwarded unchanged to the Users
// backend; the composite does not interpret its fields.
type UserPatch map[string]any

// UsersGateway is the typed client contract for the Users backend.
type UsersGateway interface {
	// Get retrieves a single user by ID.
	Get(ctx context.Context, id uuid.UUID, cred Credential) (*entity.User, error)

	// List retrieves all users. The Users backend wraps its list responses in
	// a pagination envelope; unwrapping it is the client's concern.
	List(ctx context.Context, cred Credential) ([]entity.User, error)

	// Create registers a new user.
	Create(ctx context.Context, draft *NewUser) (*entity.User, error)

	// Update applies a partial update to an existing user.
	Update(ctx context.Context, id uuid.UUID, patch UserPatch, cred Credential) (*entity.User, error)

	// Delete removes a user and returns the backend's response unchanged.
	Delete(ctx context.Context, id uuid.UUID, cred Credential) (json.RawMessage, error)

	// ExchangeOAuthCallback forwards a Google OAuth callback query string to
	// the Users backend, which owns the login flow, and returns its JSON
	// response (the issued token) unchanged.
	ExchangeOAuthCallback(ctx context.Context, rawQuery string) (json.RawMessage, error)
}
