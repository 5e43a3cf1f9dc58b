package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	user "sportshub-backend/internal/domains/user"
	"sportshub-backend/pkg/cache"
)

const userCacheTTL = 15 * time.Minute

// postgresRepository is the concrete Postgres implementation of
// user.Repository. The struct is private; callers only see the interface.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository wires a pgx pool and a cache into a user.Repository.
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) user.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Create inserts a new user. The id and created_at come back from the
// database so the passed entity ends up fully populated.
func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (
			username, email, password_hash,
			first_name, last_name, profile_image_url, role
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.ProfileImageURL,
		u.Role,
	).Scan(&u.ID, &u.CreatedAt)

	if err != nil {
		// 23505 = unique_violation. Map the constraint back to a domain error.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return user.ErrEmailAlreadyExists
			}
			return user.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// FindByID looks a user up by UUID with a cache-aside read.
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	cacheKey := fmt.Sprintf("user:%s", id.String())

	var u user.User
	found, err := r.cache.Get(ctx, cacheKey, &u)
	if err == nil && found {
		return &u, nil
	}

	query := `
		SELECT id, username, email, password_hash,
		       first_name, last_name, profile_image_url, role, created_at
		FROM users
		WHERE id = $1
	`

	err = r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.ProfileImageURL,
		&u.Role,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}

	// Ignore cache write errors, the request must not fail on a cache hiccup.
	_ = r.cache.Set(ctx, cacheKey, &u, userCacheTTL)

	return &u, nil
}

// FindByUsername is the login lookup. Not cached, logins are rare
// compared to token-based reads.
func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, "username = $1", username)
}

// FindByEmail backs the registration conflict check.
func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *postgresRepository) findOne(ctx context.Context, where string, arg any) (*user.User, error) {
	query := `
		SELECT id, username, email, password_hash,
		       first_name, last_name, profile_image_url, role, created_at
		FROM users
		WHERE ` + where

	var u user.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.ProfileImageURL,
		&u.Role,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &u, nil
}
