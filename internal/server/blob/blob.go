// Package blob stores raw file content independently of its metadata record.
//
// A blob's location is always a freshly generated identity, never derived
// from a user-supplied name, so locations cannot collide and cannot be used
// for path traversal.
package blob

import (
	"context"

	"github.com/google/uuid"
)

// Store persists raw bytes under generated locations.
//
// Read of an unknown location returns common.ErrNotFound. Other I/O failures
// are reported as errors wrapping common.ErrStoreUnavailable.
type Store interface {
	// Write persists data under a new unique location and returns it.
	Write(ctx context.Context, data []byte) (string, error)

	// Read returns the exact bytes previously written to location.
	Read(ctx context.Context, location string) ([]byte, error)
}

// newLocation generates a storage identity for a blob.
func newLocation() string {
	return uuid.New().String()
}
