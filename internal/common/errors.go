// Package common defines shared constants and sentinel errors used across
// client and server layers of the files manager. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Validation errors (expected outcomes, reported without retry).
	ErrMissingField    = errors.New("missing field")
	ErrInvalidKind     = errors.New("invalid kind")
	ErrMissingData     = errors.New("missing data")
	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")

	// Auth errors (absent, expired or foreign token; bad credentials).
	ErrUnauthorized = errors.New("unauthorized")

	// Infrastructure errors (backing store unreachable; never retried here).
	ErrStoreUnavailable = errors.New("store unavailable")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
