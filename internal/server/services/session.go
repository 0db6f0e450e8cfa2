// Package services contains the server-side business logic: session
// lifecycle, user directory, file hierarchy, and health reporting.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/server/kv"
)

// sessionKeyPrefix namespaces token bindings in the key-value store.
const sessionKeyPrefix = "auth_"

// sessionTokenBytes is the number of random bytes per token (hex-encoded to
// twice that length).
const sessionTokenBytes = 32

// SessionService issues, resolves, and revokes session tokens. A token is an
// opaque capability bound to exactly one user id; the key-value store's own
// TTL mechanism enforces expiry, so there is no cleanup process.
type SessionService struct {
	store kv.Store
	ttl   time.Duration
}

// NewSessionService constructs a SessionService with the given token lifetime.
func NewSessionService(store kv.Store, ttl time.Duration) *SessionService {
	return &SessionService{store: store, ttl: ttl}
}

// Issue generates a random token and binds it to userID for the configured
// TTL. Multiple concurrent sessions per user are legal.
func (s *SessionService) Issue(ctx context.Context, userID string) (string, error) {
	token, err := common.MakeRandHexString(sessionTokenBytes)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	if err := s.store.Set(ctx, sessionKeyPrefix+token, userID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user id bound to token. Absent and expired tokens are
// both ErrUnauthorized. Resolving never extends the TTL.
func (s *SessionService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrUnauthorized
	}
	userID, err := s.store.Get(ctx, sessionKeyPrefix+token)
	if errors.Is(err, common.ErrNotFound) {
		return "", common.ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Revoke deletes the token binding. Revoking an unknown or already-expired
// token is not an error.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.store.Del(ctx, sessionKeyPrefix+token)
}
