// Package kv abstracts the expiring key-value store that backs session
// tokens. Implementations must be safe for concurrent use.
package kv

import (
	"context"
	"time"
)

// Store is a small expiring key-value store.
//
// Get returns common.ErrNotFound for absent or expired keys. Del of an
// unknown key is not an error. Infrastructure failures are reported as
// errors wrapping common.ErrStoreUnavailable.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error

	Close() error
}
