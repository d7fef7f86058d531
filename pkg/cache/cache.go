// Package cache defines the cache port injected into services for hot
// read paths (current exchange rate, vendable product list). Writes
// invalidate explicitly; coherence across processes depends on the
// chosen backend.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented cache with explicit invalidation.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Invalidate removes a key; absent keys are not an error.
	Invalidate(ctx context.Context, key string) error
}

// Noop is a Cache that stores nothing.
type Noop struct{}

func (Noop) Get(_ context.Context, _ string) ([]byte, bool, error) {
	return nil, false, nil
}

func (Noop) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

func (Noop) Invalidate(_ context.Context, _ string) error {
	return nil
}
