package blob

import (
	"context"
	"sync"

	"github.com/avasiljevs/filesmanager/internal/common"
)

// MemoryStore keeps blobs in a map. It backs tests and throwaway setups.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Write(_ context.Context, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	location := newLocation()
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[location] = cp
	return location, nil
}

func (s *MemoryStore) Read(_ context.Context, location string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[location]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

// Len reports the number of stored blobs. Tests use it to assert write
// ordering guarantees.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
