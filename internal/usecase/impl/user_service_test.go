package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agora/internal/domain/entity"
	domainerrors "agora/internal/domain/errors"
	"agora/internal/domain/gateway"
	mockGw "agora/internal/mocks/gateway"
	"agora/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (usecase.UserUsecase, *mockGw.MockUsersGateway) {
	users := mockGw.NewMockUsersGateway(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewUserService(users, logger), users
}

func TestUserService_GetUsers_ForwardsCredential(t *testing.T) {
	service, users := createTestUserService(t)

	ctx := context.Background()
	cred := gateway.Credential("Bearer token")
	listed := []entity.User{{ID: uuid.New(), Name: "Alice"}}

	users.EXPECT().List(mock.Anything, cred).Return(listed, nil)

	result, err := service.GetUsers(ctx, cred)

	require.NoError(t, err)
	assert.Equal(t, listed, result)
}

func TestUserService_GetUsers_NilBecomesEmpty(t *testing.T) {
	service, users := createTestUserService(t)

	users.EXPECT().List(mock.Anything, noCred()).Return(nil, nil)

	result, err := service.GetUsers(context.Background(), noCred())

	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestUserService_CreateUser_Success(t *testing.T) {
	service, users := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Name:        "Alice",
		Role:        "seller",
		PhoneNumber: "555-0101",
		Merch:       "furniture",
	}
	created := &entity.User{ID: uuid.New(), Name: "Alice", Role: "seller"}

	users.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*gateway.NewUser")).
		Run(func(ctx context.Context, draft *gateway.NewUser) {
			assert.Equal(t, "Alice", draft.Name)
			assert.Equal(t, "seller", draft.Role)
		}).
		Return(created, nil)

	user, err := service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, created, user)
}

func TestUserService_CreateUser_BackendRejects(t *testing.T) {
	service, users := createTestUserService(t)

	users.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, &gateway.RejectedError{Reason: "phone number already registered"})

	user, err := service.CreateUser(context.Background(), &usecase.CreateUserInput{Name: "Alice"})

	require.Error(t, err)
	assert.Nil(t, user)

	var rejected *domainerrors.BackendRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Message(), "phone number already registered")
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	service, users := createTestUserService(t)

	userID := uuid.New()
	patch := gateway.UserPatch{"name": "Bob"}

	users.EXPECT().Update(mock.Anything, userID, patch, noCred()).
		Return(nil, gateway.ErrNotFound)

	user, err := service.UpdateUser(context.Background(), userID, patch, noCred())

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	service, users := createTestUserService(t)

	userID := uuid.New()
	cred := gateway.Credential("Bearer token")
	patch := gateway.UserPatch{"name": "Bob"}
	updated := &entity.User{ID: userID, Name: "Bob"}

	users.EXPECT().Update(mock.Anything, userID, patch, cred).Return(updated, nil)

	user, err := service.UpdateUser(context.Background(), userID, patch, cred)

	require.NoError(t, err)
	assert.Equal(t, updated, user)
}
