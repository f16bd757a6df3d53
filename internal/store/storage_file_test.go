package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBlobStorage_ReadMissingFile(t *testing.T) {
	s := NewFileBlobStorage(filepath.Join(t.TempDir(), "notes.json"))

	blob, found, err := s.Read(context.Background(), "notes")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, blob)
}

func TestFileBlobStorage_WriteThenRead(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sub", "notes.json")
	s := NewFileBlobStorage(path)

	require.NoError(t, s.Write(ctx, "notes", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Write(ctx, "notes.corrupt", []byte("not json at all")))

	blob, found, err := s.Read(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":1}]`), blob)

	blob, found, err = s.Read(ctx, "notes.corrupt")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("not json at all"), blob)

	// a fresh instance over the same file sees the same data
	blob, found, err = NewFileBlobStorage(path).Read(ctx, "notes")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte(`[{"id":1}]`), blob)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestFileBlobStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))
	s := NewFileBlobStorage(path)

	_, _, err := s.Read(context.Background(), "notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode storage file")

	err = s.Write(context.Background(), "notes", []byte("[]"))
	require.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{broken", string(data), "an unreadable file is never overwritten")
}

func TestFileBlobStorage_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, found, err := NewFileBlobStorage(path).Read(context.Background(), "notes")
	require.NoError(t, err)
	assert.False(t, found)
}
