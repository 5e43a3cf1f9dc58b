package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the data-access contract for users. Two
// implementations exist: Postgres (pgx) and an in-memory store used for
// dev and tests.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrUsernameAlreadyExists or ErrEmailAlreadyExists on conflict.
	Create(ctx context.Context, user *User) error

	// FindByID looks a user up by ID.
	// Returns ErrUserNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername looks a user up by username (login path).
	// Returns ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail looks a user up by email (registration conflict check).
	// Returns ErrUserNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*User, error)
}
