package impl

import (
	"context"
	"log/slog"

	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/gateway"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface as a thin passthrough to
// the Users backend with explicit credential forwarding.
type userService struct {
	users  gateway.UsersGateway
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users gateway.UsersGateway, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

// GetUsers lists all users, forwarding the caller's credential verbatim.
func (srv *userService) GetUsers(ctx context.Context, cred gateway.Credential) ([]entity.User, error) {
	srv.logger.Debug("Listing users")

	users, err := srv.users.List(ctx, cred)
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrNotFound), "user list")
	}
	if users == nil {
		users = []entity.User{}
	}

	return users, nil
}

// CreateUser forwards the registration payload unchanged.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	srv.logger.Info("Creating user", "name", input.Name)

	created, err := srv.users.Create(ctx, &gateway.NewUser{
		Name:        input.Name,
		Role:        input.Role,
		PhoneNumber: input.PhoneNumber,
		Merch:       input.Merch,
	})
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrNotFound), "user create")
	}

	return created, nil
}

// UpdateUser forwards a partial update unchanged, with the caller's credential.
func (srv *userService) UpdateUser(ctx context.Context, userID uuid.UUID, patch gateway.UserPatch, cred gateway.Credential) (*entity.User, error) {
	srv.logger.Info("Updating user", "userID", userID)

	updated, err := srv.users.Update(ctx, userID, patch, cred)
	if err != nil {
		return nil, errors.Wrap(translateGatewayError(err, domainerrors.ErrUserNotFound), "user update")
	}

	return updated, nil
}
