package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub-backend/internal/domains/user"
)

func newUser(username, email string) *user.User {
	return &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Role:         user.RoleAuthor,
	}
}

// Usernames and emails are compared exactly, the same way the UNIQUE
// constraints behave on the relational store. "Alice" and "alice" are
// distinct accounts on both drivers.
func TestCreateCaseSensitiveParity(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@example.com")))
	require.NoError(t, repo.Create(ctx, newUser("Alice", "Alice@example.com")))

	err := repo.Create(ctx, newUser("alice", "other@example.com"))
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)

	err = repo.Create(ctx, newUser("bob", "alice@example.com"))
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestFindByUsernameExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@example.com")))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.FindByUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestFindByEmailExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@example.com")))

	found, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)

	_, err = repo.FindByEmail(ctx, "ALICE@EXAMPLE.COM")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
