package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiljevs/filesmanager/internal/common"
)

func TestFSStore_RoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"text", []byte("hello world")},
		{"binary", []byte{0x00, 0xff, 0x10, 0x80, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			location, err := s.Write(ctx, tt.data)
			require.NoError(t, err)
			require.NotEmpty(t, location)

			got, err := s.Read(ctx, location)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestFSStore_LocationsAreUnique(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	a, err := s.Write(ctx, []byte("same"))
	require.NoError(t, err)
	b, err := s.Write(ctx, []byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFSStore_WriteLeavesNoTempFiles(t *testing.T) {
	root := t.TempDir()
	s, err := NewFSStore(root)
	require.NoError(t, err)
	ctx := context.Background()

	locations := map[string]bool{}
	for i := 0; i < 3; i++ {
		location, err := s.Write(ctx, []byte("payload"))
		require.NoError(t, err)
		locations[location] = true
	}

	// the root holds exactly the renamed blobs, nothing in-progress
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.True(t, locations[e.Name()], e.Name())

		info, err := e.Info()
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}
}

func TestFSStore_ReadUnknownLocation(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Read(context.Background(), "does-not-exist")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestNewFSStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "blobs")

	_, err := NewFSStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
