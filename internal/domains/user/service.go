package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business-logic contract for accounts and auth.
type Service interface {
	// Register creates an account and returns the new user with a signed
	// session token. New accounts start with the AUTHOR role.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, string, error)

	// Login verifies credentials and returns the user with a signed
	// session token. Returns ErrInvalidCredentials on any mismatch so
	// callers cannot distinguish a bad username from a bad password.
	Login(ctx context.Context, req LoginRequest) (*UserDTO, string, error)

	// GetProfile returns the public projection of a user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
}
