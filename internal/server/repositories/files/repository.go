// Package files defines the repository for file-hierarchy metadata.
package files

import (
	"context"

	"github.com/avasiljevs/filesmanager/internal/server/models"
)

// Repository persists FileEntry records. Entries are never updated or
// deleted once written.
//
// GetByID looks an entry up regardless of owner (used for parent checks).
// GetByOwner scopes the lookup to one owner; a foreign entry is reported as
// common.ErrNotFound, indistinguishable from absence. List returns entries
// for (owner, parent) in insertion order.
type Repository interface {
	Create(ctx context.Context, entry *models.FileEntry) (*models.FileEntry, error)
	GetByID(ctx context.Context, id string) (*models.FileEntry, error)
	GetByOwner(ctx context.Context, ownerID, id string) (*models.FileEntry, error)
	List(ctx context.Context, ownerID, parentID string, skip, limit int64) ([]*models.FileEntry, error)
	Count(ctx context.Context) (int64, error)
}
