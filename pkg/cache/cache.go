package cache

import (
	"context"
	"time"
)

// Cache is the contract for the shared cache layer. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get loads the value stored under key and unmarshals it into dest.
	// The bool result reports whether the key was present; on a miss dest
	// is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL. A zero TTL means the
	// entry never expires.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	Ping(ctx context.Context) error
}
