package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportshub-backend/pkg/cache"
)

// Both implementations must satisfy the shared interface; assigning
// them here keeps the contract checked even if the var _ assertions
// are ever removed.
func TestImplementationsSatisfyInterface(t *testing.T) {
	var c cache.Cache

	c = NewNoopCache()
	assert.NotNil(t, c)

	c = NewRedisCache("localhost:6379", "", 0)
	assert.NotNil(t, c)
}

func TestNoopCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

	var dest string
	found, err := c.Get(ctx, "key", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, dest)

	assert.NoError(t, c.Delete(ctx, "key"))
	assert.NoError(t, c.DeletePattern(ctx, "key:*"))
	assert.NoError(t, c.Ping(ctx))
}
