package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub-backend/internal/domains/user"
	"sportshub-backend/internal/domains/user/repository"
	"sportshub-backend/pkg/jwt"
)

func newTestService() user.Service {
	repo := repository.NewMemoryRepository()
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	return NewUserService(repo, jwtManager)
}

func registerReq(username, email string) user.RegisterRequest {
	return user.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	dto, token, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)
	require.NotNil(t, dto)

	assert.Equal(t, "alice", dto.Username)
	assert.Equal(t, user.RoleAuthor, dto.Role, "new accounts get the AUTHOR role")
	assert.NotEmpty(t, token)

	// Password data must never appear in the DTO.
	assert.NotEqual(t, "secret123", dto.Email)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, registerReq("alice", "other@example.com"))
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyExists)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, registerReq("bob", "alice@example.com"))
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  user.RegisterRequest
	}{
		{"short username", user.RegisterRequest{Username: "ab", Email: "a@b.com", Password: "secret123"}},
		{"bad email", user.RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret123"}},
		{"short password", user.RegisterRequest{Username: "alice", Email: "a@b.com", Password: "12345"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	dto, token, err := svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Username)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, user.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, user.LoginRequest{Username: "ghost", Password: "whatever"})

	// Same error as a wrong password so the API does not leak which
	// usernames exist.
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	dto, _, err := svc.Register(ctx, registerReq("alice", "alice@example.com"))
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.ID, profile.ID)
	assert.Equal(t, "alice@example.com", profile.Email)
}
