package files

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/server/models"
)

// MemoryRepository is an in-memory Repository used in tests. Entries are
// kept in insertion order so that pagination behaves like the Mongo
// implementation.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []*models.FileEntry
	byID    map[string]*models.FileEntry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*models.FileEntry)}
}

func (r *MemoryRepository) Create(_ context.Context, entry *models.FileEntry) (*models.FileEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e := *entry
	e.ID = primitive.NewObjectID()
	r.entries = append(r.entries, &e)
	r.byID[e.ID.Hex()] = &e
	cp := e
	return &cp, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.FileEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *MemoryRepository) GetByOwner(_ context.Context, ownerID, id string) (*models.FileEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok || e.OwnerID != ownerID {
		return nil, common.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *MemoryRepository) List(_ context.Context, ownerID, parentID string, skip, limit int64) ([]*models.FileEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []*models.FileEntry{}
	for _, e := range r.entries {
		if e.OwnerID == ownerID && e.ParentID == parentID {
			matched = append(matched, e)
		}
	}

	if skip >= int64(len(matched)) {
		return []*models.FileEntry{}, nil
	}
	matched = matched[skip:]
	if limit > 0 && int64(len(matched)) > limit {
		matched = matched[:limit]
	}

	result := make([]*models.FileEntry, 0, len(matched))
	for _, e := range matched {
		cp := *e
		result = append(result, &cp)
	}
	return result, nil
}

func (r *MemoryRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entries)), nil
}
