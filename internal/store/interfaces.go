// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStorage is the key-value persistence collaborator. Values are opaque
// blobs; no implementation interprets them.
type BlobStorage interface {
	// Read returns the blob stored under key. found is false when the key
	// was never written.
	Read(ctx context.Context, key string) (blob []byte, found bool, err error)
	// Write replaces the blob stored under key.
	Write(ctx context.Context, key string, blob []byte) error
}

// NoteRepository stores the whole note collection as one encoded blob.
type NoteRepository interface {
	// Load returns the stored collection. found is false when nothing was
	// stored yet. A blob that does not decode yields a *DecodeError that
	// carries the raw bytes.
	Load(ctx context.Context) (notes []models.Note, found bool, err error)
	// Save encodes notes and replaces the stored collection.
	Save(ctx context.Context, notes []models.Note) error
	// Backup keeps a copy of an undecodable blob so a later Save cannot
	// destroy it.
	Backup(ctx context.Context, blob []byte) error
}
