// Package users defines the repository for registered accounts.
package users

import (
	"context"

	"github.com/avasiljevs/filesmanager/internal/server/models"
)

// Repository persists User records.
//
// Create returns common.ErrAlreadyExists when the email is taken; the
// uniqueness guarantee lives in the storage layer, not in the caller.
// Lookups return common.ErrNotFound for absent users.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}
