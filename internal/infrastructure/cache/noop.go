package cache

import (
	"context"
	"time"

	"sportshub-backend/pkg/cache"
)

// NoopCache satisfies cache.Cache without storing anything. Used when
// Redis is unavailable or when running against the in-memory stores,
// so repositories never need a nil check.
type NoopCache struct{}

var _ cache.Cache = NoopCache{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (NoopCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (NoopCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (NoopCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (NoopCache) Ping(ctx context.Context) error { return nil }
