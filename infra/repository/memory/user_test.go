package memory_test

import (
	"context"
	"testing"

	"github.com/amirasaad/bankledger/infra/repository/memory"
	"github.com/amirasaad/bankledger/pkg/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidate(email, phone string) user.User {
	return user.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Phone:     phone,
		PromoCode: "WELCOME",
		Password:  "s3cret-pass",
	}
}

func TestUserStore_Create(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	u, err := store.Create(ctx, newCandidate("ada@example.com", "555-0100"))
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "ada@example.com", u.Username, "username is assigned from the email")
	assert.True(t, u.IsActive)
	assert.True(t, u.IsEmailVerified)
	assert.True(t, u.IsPhoneVerified)
	assert.False(t, u.IsLocked)

	// Credentials never leave the directory.
	assert.Empty(t, u.Password)
	assert.Empty(t, u.PasswordHash)
}

func TestUserStore_DuplicateIdentity(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	_, err := store.Create(ctx, newCandidate("ada@example.com", "555-0100"))
	require.NoError(t, err)

	testCases := []struct {
		desc  string
		email string
		phone string
	}{
		{desc: "same email", email: "ada@example.com", phone: "555-0199"},
		{desc: "same phone", email: "other@example.com", phone: "555-0100"},
		{desc: "same email and phone", email: "ada@example.com", phone: "555-0100"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := store.Create(ctx, newCandidate(tc.email, tc.phone))
			assert.ErrorIs(t, err, user.ErrDuplicateIdentity)
		})
	}

	// The comparison is byte for byte: a case variant is a different identity.
	_, err = store.Create(ctx, newCandidate("ADA@example.com", "555-0142"))
	assert.NoError(t, err)
}

func TestUserStore_FetchScrubsCredentials(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	created, err := store.Create(ctx, newCandidate("ada@example.com", "555-0100"))
	require.NoError(t, err)
	_, err = store.Create(ctx, newCandidate("grace@example.com", "555-0101"))
	require.NoError(t, err)

	fetched, err := store.FetchByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Password)
	assert.Empty(t, fetched.PasswordHash)

	all, err := store.Fetch(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, u := range all {
		assert.Empty(t, u.Password)
		assert.Empty(t, u.PasswordHash)
	}

	// Insertion order is preserved.
	assert.Equal(t, "ada@example.com", all[0].Email)
	assert.Equal(t, "grace@example.com", all[1].Email)
}

func TestUserStore_FetchByIDNotFound(t *testing.T) {
	store := memory.NewUserStore()
	_, err := store.FetchByID(context.Background(), "no-such-user")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewUserStore()

	u, err := store.Create(ctx, newCandidate("ada@example.com", "555-0100"))
	require.NoError(t, err)

	deleted, err := store.Delete(ctx, "no-such-user")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = store.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err := store.Fetch(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Once deleted, the identity can be registered again.
	_, err = store.Create(ctx, newCandidate("ada@example.com", "555-0100"))
	assert.NoError(t, err)
}
