package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/avasiljevs/filesmanager/internal/common"
)

// FSStore implements Store on the local filesystem. Each blob is a single
// file named by its generated location inside the root directory.
type FSStore struct {
	root string
}

// NewFSStore creates the root directory if it does not exist and returns a
// filesystem-backed store.
func NewFSStore(root string) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return &FSStore{root: root}, nil
}

func (s *FSStore) path(location string) string {
	// location is always a generated identity, but Base guards against a
	// corrupted metadata record smuggling in path separators.
	return filepath.Join(s.root, filepath.Base(location))
}

// Write stores the blob at a fresh location. The data is written to a
// temporary file, synced to disk, and only then renamed into place, so a
// blob is never observable at its location before it is durable.
func (s *FSStore) Write(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	location := newLocation()

	tmp, err := os.CreateTemp(s.root, "incoming-*")
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0o644)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), s.path(location))
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return location, nil
}

func (s *FSStore) Read(ctx context.Context, location string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(location))
	if os.IsNotExist(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStoreUnavailable, err)
	}
	return data, nil
}
