// Package cache provides response caching for AUR metadata queries.
//
// Three backends implement the Cache interface:
//   - FileCache: file-based storage under the user cache directory (default)
//   - RedisCache: shared redis-backed storage for machines that already run one
//   - NullCache: no-op storage for --refresh runs and tests
//
// Entries carry a TTL; expired entries are treated as misses and removed
// lazily on the next read.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized values under string keys with per-entry expiration.
// Implementations are not required to be goroutine-safe; aurum runs
// single-threaded and issues one operation at a time.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
