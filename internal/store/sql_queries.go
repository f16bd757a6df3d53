// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv"

// buildReadBlobQuery builds the SELECT of a single kv value.
func buildReadBlobQuery(key string) (string, []any, error) {
	return sq.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildWriteBlobQuery builds an upsert that replaces the value under key.
func buildWriteBlobQuery(key string, blob []byte, at time.Time) (string, []any, error) {
	return sq.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, blob, at).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(sq.Question).
		ToSql()
}
