// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

// BackupSuffix is appended to the collection key to form the key an
// undecodable blob is copied to.
const BackupSuffix = ".corrupt"

type noteRepository struct {
	blobs BlobStorage
	key   string
}

// NewNoteRepository returns a [NoteRepository] that stores the collection
// under key in blobs.
func NewNoteRepository(blobs BlobStorage, key string) NoteRepository {
	return &noteRepository{blobs: blobs, key: key}
}

func (r *noteRepository) Load(ctx context.Context) ([]models.Note, bool, error) {
	log := logger.FromContext(ctx)

	blob, found, err := r.blobs.Read(ctx, r.key)
	if err != nil {
		return nil, false, fmt.Errorf("error reading notes: %w", err)
	}
	if !found {
		log.Debug().Str("func", "noteRepository.Load").Str("key", r.key).Msg("no stored notes")
		return nil, false, nil
	}

	notes, err := DecodeNotes(blob)
	if err != nil {
		return nil, true, &DecodeError{Blob: blob, Err: err}
	}

	log.Debug().Str("func", "noteRepository.Load").Int("count", len(notes)).Msg("notes loaded")
	return notes, true, nil
}

func (r *noteRepository) Save(ctx context.Context, notes []models.Note) error {
	blob, err := EncodeNotes(notes)
	if err != nil {
		return err
	}

	if err = r.blobs.Write(ctx, r.key, blob); err != nil {
		return fmt.Errorf("error writing notes: %w", err)
	}
	return nil
}

func (r *noteRepository) Backup(ctx context.Context, blob []byte) error {
	key := r.key + BackupSuffix
	if err := r.blobs.Write(ctx, key, blob); err != nil {
		return fmt.Errorf("error backing up notes to %q: %w", key, err)
	}

	logger.FromContext(ctx).Warn().Str("func", "noteRepository.Backup").Str("key", key).Msg("corrupt notes blob backed up")
	return nil
}
