package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// fileBlobStorage keeps every key in one JSON object file. Writes go to a
// temp file that is renamed over the target, so a crash never leaves a
// half-written file behind.
type fileBlobStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileBlobStorage returns a [BlobStorage] backed by the file at path.
// The file is created on first write.
func NewFileBlobStorage(path string) BlobStorage {
	return &fileBlobStorage{path: path}
}

func (s *fileBlobStorage) Read(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileBlobStorage.Read").Str("path", s.path).Msg("failed to read storage file")
		return nil, false, err
	}

	value, ok := state[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

func (s *fileBlobStorage) Write(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	state, err := s.load()
	if err != nil {
		log.Err(err).Str("func", "fileBlobStorage.Write").Str("path", s.path).Msg("failed to read storage file")
		return err
	}
	state[key] = string(blob)

	if err = s.persist(state); err != nil {
		log.Err(err).Str("func", "fileBlobStorage.Write").Str("path", s.path).Msg("failed to write storage file")
		return err
	}

	log.Debug().Str("func", "fileBlobStorage.Write").Str("key", key).Int("bytes", len(blob)).Msg("blob written")
	return nil
}

func (s *fileBlobStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	state := make(map[string]string)
	if len(data) == 0 {
		return state, nil
	}
	if err = json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode storage file: %w", err)
	}
	return state, nil
}

func (s *fileBlobStorage) persist(state map[string]string) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp storage file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp storage file: %w", err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temp storage file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace storage file: %w", err)
	}

	return nil
}
