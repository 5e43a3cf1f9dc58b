package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	user "sportshub-backend/internal/domains/user"
)

// memoryRepository keeps users in process memory. It backs the memory
// storage driver and the unit tests. Safe for concurrent use.
type memoryRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*user.User
}

// NewMemoryRepository creates an empty in-memory user store.
func NewMemoryRepository() user.Repository {
	return &memoryRepository{
		users: make(map[uuid.UUID]*user.User),
	}
}

func (r *memoryRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Exact comparison, matching the UNIQUE constraints of the
	// relational store.
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return user.ErrUsernameAlreadyExists
		}
		if existing.Email == u.Email {
			return user.ErrEmailAlreadyExists
		}
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}

	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *memoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, user.ErrUserNotFound
}
