package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/server/blob"
	"github.com/avasiljevs/filesmanager/internal/server/models"
	"github.com/avasiljevs/filesmanager/internal/server/repositories/files"
)

// FileService validates parent references, persists file metadata, and
// delegates binary content to the blob store.
type FileService struct {
	repo  files.Repository
	blobs blob.Store
}

// NewFileService constructs a FileService over the given repository and
// blob store.
func NewFileService(repo files.Repository, blobs blob.Store) *FileService {
	return &FileService{repo: repo, blobs: blobs}
}

// CreateFileInput carries the fields of an upload request. Data holds the
// base64-encoded payload and must be set for non-folder kinds.
type CreateFileInput struct {
	OwnerID  string
	Name     string
	Kind     models.Kind
	ParentID string
	IsPublic bool
	Data     string
}

// normalizeParent maps an omitted parent to the canonical root sentinel.
func normalizeParent(parentID string) string {
	if parentID == "" {
		return models.RootParentID
	}
	return parentID
}

// Create validates the input, writes the blob (for non-folder kinds), and
// persists the metadata record. The blob write completes before the metadata
// insert; a crash in between leaves at worst an orphaned blob, never a
// metadata record pointing at nothing.
func (s *FileService) Create(ctx context.Context, in CreateFileInput) (*models.FileEntry, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name", common.ErrMissingField)
	}
	if !in.Kind.Valid() {
		return nil, common.ErrInvalidKind
	}
	if in.Kind != models.KindFolder && in.Data == "" {
		return nil, common.ErrMissingData
	}

	parentID := normalizeParent(in.ParentID)
	if parentID != models.RootParentID {
		parent, err := s.repo.GetByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil, common.ErrParentNotFound
			}
			return nil, err
		}
		if !parent.IsFolder() {
			return nil, common.ErrParentNotFolder
		}
	}

	entry := &models.FileEntry{
		OwnerID:   in.OwnerID,
		Name:      in.Name,
		Kind:      in.Kind,
		ParentID:  parentID,
		IsPublic:  in.IsPublic,
		CreatedAt: time.Now(),
	}

	if in.Kind != models.KindFolder {
		data, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base64 payload", common.ErrMissingData)
		}
		location, err := s.blobs.Write(ctx, data)
		if err != nil {
			return nil, err
		}
		entry.StoragePath = location
	}

	return s.repo.Create(ctx, entry)
}

// Get returns the entry only when it belongs to ownerID. A foreign entry
// reports ErrNotFound, indistinguishable from absence.
func (s *FileService) Get(ctx context.Context, ownerID, id string) (*models.FileEntry, error) {
	return s.repo.GetByOwner(ctx, ownerID, id)
}

// List returns one page of the owner's entries under parentID, in insertion
// order. A page past the end yields an empty slice.
func (s *FileService) List(ctx context.Context, ownerID, parentID string, page int64) ([]*models.FileEntry, error) {
	skip, limit := PageWindow(page)
	return s.repo.List(ctx, ownerID, normalizeParent(parentID), skip, limit)
}

// Count reports the total number of file entries.
func (s *FileService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
