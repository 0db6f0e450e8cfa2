package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiljevs/filesmanager/internal/common"
	"github.com/avasiljevs/filesmanager/internal/server/blob"
	"github.com/avasiljevs/filesmanager/internal/server/models"
	"github.com/avasiljevs/filesmanager/internal/server/repositories/files"
)

func newFileService(t *testing.T) (*FileService, *files.MemoryRepository, *blob.MemoryStore) {
	t.Helper()
	repo := files.NewMemoryRepository()
	blobs := blob.NewMemoryStore()
	return NewFileService(repo, blobs), repo, blobs
}

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestFileService_CreateFolder(t *testing.T) {
	svc, _, blobs := newFileService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, CreateFileInput{
		OwnerID: "user-1",
		Name:    "notes",
		Kind:    models.KindFolder,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RootParentID, entry.ParentID)
	assert.False(t, entry.ID.IsZero())
	assert.Empty(t, entry.StoragePath)

	// folders never touch the blob store
	assert.Equal(t, 0, blobs.Len())
}

func TestFileService_CreateFile(t *testing.T) {
	svc, _, blobs := newFileService(t)
	ctx := context.Background()

	folder, err := svc.Create(ctx, CreateFileInput{
		OwnerID: "user-1",
		Name:    "notes",
		Kind:    models.KindFolder,
	})
	require.NoError(t, err)

	entry, err := svc.Create(ctx, CreateFileInput{
		OwnerID:  "user-1",
		Name:     "a.txt",
		Kind:     models.KindFile,
		ParentID: folder.ID.Hex(),
		Data:     b64("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, folder.ID.Hex(), entry.ParentID)
	require.NotEmpty(t, entry.StoragePath)

	// decoded payload lands in the blob store, never the encoded form
	data, err := blobs.Read(ctx, entry.StoragePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), data)
}

func TestFileService_CreateValidation(t *testing.T) {
	svc, _, _ := newFileService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   CreateFileInput
		want error
	}{
		{"missing name", CreateFileInput{OwnerID: "u", Kind: models.KindFile, Data: b64("x")}, common.ErrMissingField},
		{"invalid kind", CreateFileInput{OwnerID: "u", Name: "x", Kind: "archive"}, common.ErrInvalidKind},
		{"empty kind", CreateFileInput{OwnerID: "u", Name: "x"}, common.ErrInvalidKind},
		{"missing data", CreateFileInput{OwnerID: "u", Name: "x", Kind: models.KindFile}, common.ErrMissingData},
		{"missing data image", CreateFileInput{OwnerID: "u", Name: "x", Kind: models.KindImage}, common.ErrMissingData},
		{"bad base64", CreateFileInput{OwnerID: "u", Name: "x", Kind: models.KindFile, Data: "%%%"}, common.ErrMissingData},
		{"parent not found", CreateFileInput{OwnerID: "u", Name: "x", Kind: models.KindFile, ParentID: "ffffffffffffffffffffffff", Data: b64("x")}, common.ErrParentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestFileService_ParentMustBeFolder(t *testing.T) {
	svc, _, _ := newFileService(t)
	ctx := context.Background()

	file, err := svc.Create(ctx, CreateFileInput{
		OwnerID: "user-1",
		Name:    "a.txt",
		Kind:    models.KindFile,
		Data:    b64("x"),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateFileInput{
		OwnerID:  "user-1",
		Name:     "b.txt",
		Kind:     models.KindFile,
		ParentID: file.ID.Hex(),
		Data:     b64("y"),
	})
	assert.True(t, errors.Is(err, common.ErrParentNotFolder))
}

type failingBlobStore struct{}

func (failingBlobStore) Write(context.Context, []byte) (string, error) {
	return "", common.ErrStoreUnavailable
}
func (failingBlobStore) Read(context.Context, string) ([]byte, error) {
	return nil, common.ErrStoreUnavailable
}

func TestFileService_NoMetadataWithoutBlob(t *testing.T) {
	repo := files.NewMemoryRepository()
	svc := NewFileService(repo, failingBlobStore{})
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateFileInput{
		OwnerID: "user-1",
		Name:    "a.txt",
		Kind:    models.KindFile,
		Data:    b64("x"),
	})
	require.Error(t, err)

	// the blob write failed, so no metadata record may exist
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestFileService_GetOwnerIsolation(t *testing.T) {
	svc, _, _ := newFileService(t)
	ctx := context.Background()

	entry, err := svc.Create(ctx, CreateFileInput{
		OwnerID: "user-1",
		Name:    "private",
		Kind:    models.KindFolder,
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "user-1", entry.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)

	// another user sees nothing, not a "forbidden"
	_, err = svc.Get(ctx, "user-2", entry.ID.Hex())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestFileService_ListPagination(t *testing.T) {
	svc, _, _ := newFileService(t)
	ctx := context.Background()

	folder, err := svc.Create(ctx, CreateFileInput{
		OwnerID: "user-1",
		Name:    "bulk",
		Kind:    models.KindFolder,
	})
	require.NoError(t, err)

	for i := 0; i < 45; i++ {
		_, err := svc.Create(ctx, CreateFileInput{
			OwnerID:  "user-1",
			Name:     fmt.Sprintf("f%02d", i),
			Kind:     models.KindFile,
			ParentID: folder.ID.Hex(),
			Data:     b64("x"),
		})
		require.NoError(t, err)
	}

	page0, err := svc.List(ctx, "user-1", folder.ID.Hex(), 0)
	require.NoError(t, err)
	assert.Len(t, page0, 20)
	assert.Equal(t, "f00", page0[0].Name)

	page2, err := svc.List(ctx, "user-1", folder.ID.Hex(), 2)
	require.NoError(t, err)
	assert.Len(t, page2, 5)
	assert.Equal(t, "f40", page2[0].Name)

	page3, err := svc.List(ctx, "user-1", folder.ID.Hex(), 3)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestFileService_ListDefaultsToRoot(t *testing.T) {
	svc, _, _ := newFileService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateFileInput{
		OwnerID: "user-1",
		Name:    "top",
		Kind:    models.KindFolder,
	})
	require.NoError(t, err)

	entries, err := svc.List(ctx, "user-1", "", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "top", entries[0].Name)

	// a stranger's root is empty
	entries, err = svc.List(ctx, "user-2", "", 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
