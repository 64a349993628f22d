package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. The only production
// implementation is Redis, but services depend on this interface so
// tests can swap in a fake.
type Cache interface {
	// Get reads a key and unmarshals it into dest.
	// found is false on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Set stores value under key with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error

	// Increment atomically increments a counter key, creating it at 1.
	// Used for per-IP rate limiting.
	Increment(ctx context.Context, key string) (int64, error)

	// Expire sets a TTL on an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
}
