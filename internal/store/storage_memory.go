package store

import (
	"context"
	"slices"
	"sync"
)

type memoryBlobStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBlobStorage returns a [BlobStorage] that lives as long as the
// process.
func NewMemoryBlobStorage() BlobStorage {
	return &memoryBlobStorage{blobs: make(map[string][]byte)}
}

func (m *memoryBlobStorage) Read(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(blob), true, nil
}

func (m *memoryBlobStorage) Write(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = slices.Clone(blob)
	return nil
}
