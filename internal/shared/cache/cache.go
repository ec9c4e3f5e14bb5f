// Package cache holds the resolution cache: an ephemeral code -> URL map
// with per-entry expiry. Nothing in it is authoritative; a miss never means
// the link does not exist.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a resolved code stays cached.
const DefaultTTL = time.Hour

// Cache is the key/value capability used by the creation and redirect services.
type Cache interface {
	// Get returns the cached value and true on a hit. Expired entries are misses.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key for ttl. A non-positive ttl never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
