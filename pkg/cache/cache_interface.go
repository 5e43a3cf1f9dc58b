package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Implementations may be
// backed by Redis or be no-ops; callers must treat every operation as
// best-effort and never fail a request on a cache error.
type Cache interface {
	// Get reads the value stored under key and unmarshals it into dest.
	// Returns found=false on a miss; dest is untouched in that case.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching the glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
