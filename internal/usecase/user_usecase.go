package usecase

import (
	"context"

	"agora/internal/domain/entity"
	"agora/internal/domain/gateway"

	"github.com/google/uuid"
)

// UserUsecase defines the direct passthrough operations to the Users backend.
// No enrichment and no gating; these exist here only because they share the
// explicit credential-forwarding contract of the composite operations.
type UserUsecase interface {
	GetUsers(ctx context.Context, cred gateway.Credential) ([]entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, patch gateway.UserPatch, cred gateway.Credential) (*entity.User, error)
}

// CreateUserInput defines the data required to register a user.
type CreateUserInput struct {
	Name        string `json:"name" validate:"required"`
	Role        string `json:"role" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Merch       string `json:"merch" validate:"required"`
}
