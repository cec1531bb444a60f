package backend

import (
	"context"

	"agora/internal/domain/gateway"
	"agora/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userDirectory implements service.UserDirectory by probing the Users
// backend's get-by-id endpoint.
type userDirectory struct {
	users gateway.UsersGateway
}

// NewUserDirectory is the constructor for the user existence probe.
func NewUserDirectory(users gateway.UsersGateway) service.UserDirectory {
	return &userDirectory{users: users}
}

// Exists interprets a 404 as "does not exist" and a successful lookup as
// "exists". Any other failure is propagated: an unreachable Users backend
// must not be read as a negative answer.
func (d *userDirectory) Exists(ctx context.Context, userID uuid.UUID) (bool, error) {
	if _, err := d.users.Get(ctx, userID, ""); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "user existence probe")
	}

	return true, nil
}
