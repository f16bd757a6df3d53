// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/models"
)

func TestNoteRepository_LoadNothingStored(t *testing.T) {
	repo := NewNoteRepository(NewMemoryBlobStorage(), "notes")

	notes, found, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, notes)
}

func TestNoteRepository_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	repo := NewNoteRepository(NewMemoryBlobStorage(), "notes")
	want := []models.Note{
		{ID: 1, Title: "a", Tags: []string{"x"}, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Content: "b", Tags: []string{}, CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, repo.Save(ctx, want))
	got, found, err := repo.Load(ctx)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)
}

func TestNoteRepository_SaveEmptyCollection(t *testing.T) {
	ctx := context.Background()
	blobs := NewMemoryBlobStorage()
	repo := NewNoteRepository(blobs, "notes")

	require.NoError(t, repo.Save(ctx, nil))

	blob, found, err := blobs.Read(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", string(blob))
}

func TestNoteRepository_LoadCorrupt(t *testing.T) {
	ctx := context.Background()
	blobs := NewMemoryBlobStorage()
	require.NoError(t, blobs.Write(ctx, "notes", []byte("{oops")))
	repo := NewNoteRepository(blobs, "notes")

	notes, found, err := repo.Load(ctx)

	require.Error(t, err)
	assert.True(t, found)
	assert.Nil(t, notes)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, []byte("{oops"), decodeErr.Blob)
}

func TestNoteRepository_CorruptStorageFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))
	repo := NewNoteRepository(NewFileBlobStorage(path), "notes")

	notes, found, err := repo.Load(ctx)
	require.Error(t, err)
	assert.False(t, found)
	assert.Nil(t, notes)
	assert.Contains(t, err.Error(), "error reading notes")

	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr), "an unreadable file is not a recoverable blob")

	require.Error(t, repo.Backup(ctx, []byte("{broken")))
	require.Error(t, repo.Save(ctx, []models.Note{}))

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{broken", string(data))
}

func TestNoteRepository_Backup(t *testing.T) {
	ctx := context.Background()
	blobs := NewMemoryBlobStorage()
	repo := NewNoteRepository(blobs, "mine")

	require.NoError(t, repo.Backup(ctx, []byte("{oops")))

	blob, found, err := blobs.Read(ctx, "mine.corrupt")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("{oops"), blob)
}

func TestNoteRepository_StorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	blobs := mock.NewMockBlobStorage(ctrl)
	repo := NewNoteRepository(blobs, "notes")
	storageErr := errors.New("quota exceeded")

	blobs.EXPECT().Read(ctx, "notes").Return(nil, false, storageErr)
	blobs.EXPECT().Write(ctx, "notes", []byte("[]")).Return(storageErr)
	blobs.EXPECT().Write(ctx, "notes.corrupt", gomock.Any()).Return(storageErr)

	_, _, err := repo.Load(ctx)
	assert.ErrorIs(t, err, storageErr)
	assert.Contains(t, err.Error(), "error reading notes")

	err = repo.Save(ctx, []models.Note{})
	assert.ErrorIs(t, err, storageErr)
	assert.Contains(t, err.Error(), "error writing notes")

	err = repo.Backup(ctx, []byte("x"))
	assert.ErrorIs(t, err, storageErr)
}
