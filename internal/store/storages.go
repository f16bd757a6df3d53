// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// ClientStorages groups the client storage layer: the raw blob storage
// chosen by config and the note repository on top of it.
type ClientStorages struct {
	// Blobs is the key-value backend selected by the configured driver.
	Blobs BlobStorage
	// Notes reads and writes the note collection through Blobs.
	Notes NoteRepository

	closer io.Closer
}

// NewClientStorages builds the storage layer for cfg.Driver:
//   - sqlite: opens cfg.DB.DSN, creating the file if needed, and runs
//     migrations via [DB.Migrate];
//   - file: a single JSON file at cfg.File.Path;
//   - memory: a process-local map.
//
// The caller must Close the result.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	storages := &ClientStorages{}
	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		storages.Blobs = NewSQLiteBlobStorage(db)
		storages.closer = db
	case config.DriverFile:
		storages.Blobs = NewFileBlobStorage(cfg.File.Path)
	case config.DriverMemory:
		storages.Blobs = NewMemoryBlobStorage()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	storages.Notes = NewNoteRepository(storages.Blobs, cfg.Key)
	return storages, nil
}

// Close releases the underlying connection, if any.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
