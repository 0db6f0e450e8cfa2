package services

import (
	"context"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/server/models"
	"github.com/avasiljevs/filesmanager/internal/server/repositories/users"
)

// UserService handles registration, credential verification, and user lookup.
type UserService struct {
	repo users.Repository
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(repo users.Repository) *UserService {
	return &UserService{repo: repo}
}

// hashPassword produces the stored credential digest: a plain unsalted
// SHA-1 hex string, matched exactly on verification. This keeps stored
// credentials interchangeable with the original deployment's data.
func hashPassword(password string) string {
	sum := sha1.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user. Email uniqueness is enforced by the storage
// layer; a duplicate surfaces as ErrAlreadyExists regardless of concurrent
// registrations.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email", common.ErrMissingField)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password", common.ErrMissingField)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashPassword(password),
		CreatedAt:    time.Now(),
	}
	return s.repo.Create(ctx, user)
}

// Verify returns the user when both email and password digest match, and
// ErrUnauthorized otherwise. It never reveals which of the two mismatched.
// Infrastructure failures pass through unchanged so callers can tell an
// outage apart from bad credentials.
func (s *UserService) Verify(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		// absent user and wrong password are indistinguishable
		return nil, common.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	candidate := hashPassword(password)
	if subtle.ConstantTimeCompare([]byte(user.PasswordHash), []byte(candidate)) != 1 {
		return nil, common.ErrUnauthorized
	}
	return user, nil
}

// Lookup returns the user with the given id, or ErrNotFound.
func (s *UserService) Lookup(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Count reports the total number of registered users.
func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
