package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "rate", []byte("2850"), time.Minute))

	val, ok, err := c.Get(ctx, "rate")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("2850"), val)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "rate", []byte("2850"), -time.Second))

	_, ok, err := c.Get(ctx, "rate")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheInvalidate(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "vendable", []byte("[]"), time.Minute))
	require.NoError(t, c.Invalidate(ctx, "vendable"))

	_, ok, err := c.Get(ctx, "vendable")
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalidating an absent key is not an error.
	require.NoError(t, c.Invalidate(ctx, "missing"))
}
