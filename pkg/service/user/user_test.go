package user_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/bankledger/infra/repository/memory"
	"github.com/amirasaad/bankledger/pkg/domain/user"
	usersvc "github.com/amirasaad/bankledger/pkg/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *usersvc.Service {
	return usersvc.New(memory.NewUserStore(), slog.New(slog.DiscardHandler))
}

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.CreateUser(ctx, user.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-0100",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Empty(t, created.PasswordHash)

	got, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Empty(t, got.PasswordHash)

	_, err = svc.GetUser(ctx, "no-such-id")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestCreateUser_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	candidate := user.User{Email: "ada@example.com", Phone: "555-0100", Password: "s3cret-pass"}
	_, err := svc.CreateUser(ctx, candidate)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, candidate)
	assert.ErrorIs(t, err, user.ErrDuplicateIdentity)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	created, err := svc.CreateUser(ctx, user.User{
		Email: "ada@example.com", Phone: "555-0100", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}
