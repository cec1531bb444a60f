package backend

import (
	"context"
	"testing"

	"agora/internal/domain/entity"
	"agora/internal/domain/gateway"
	mockGw "agora/internal/mocks/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserDirectory_Exists_True(t *testing.T) {
	users := mockGw.NewMockUsersGateway(t)
	userID := uuid.New()

	users.EXPECT().Get(mock.Anything, userID, gateway.Credential("")).
		Return(&entity.User{ID: userID}, nil)

	exists, err := NewUserDirectory(users).Exists(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserDirectory_Exists_NotFoundIsFalse(t *testing.T) {
	users := mockGw.NewMockUsersGateway(t)
	userID := uuid.New()

	users.EXPECT().Get(mock.Anything, userID, gateway.Credential("")).
		Return(nil, gateway.ErrNotFound)

	exists, err := NewUserDirectory(users).Exists(context.Background(), userID)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserDirectory_Exists_UnavailablePropagates(t *testing.T) {
	users := mockGw.NewMockUsersGateway(t)
	userID := uuid.New()

	users.EXPECT().Get(mock.Anything, userID, gateway.Credential("")).
		Return(nil, &gateway.UnavailableError{Service: "users", Status: 503})

	exists, err := NewUserDirectory(users).Exists(context.Background(), userID)

	require.Error(t, err)
	assert.False(t, exists)

	var unavailable *gateway.UnavailableError
	assert.ErrorAs(t, err, &unavailable)
}
