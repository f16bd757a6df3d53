// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

type sqliteBlobStorage struct {
	*DB
	now func() time.Time
}

// NewSQLiteBlobStorage returns a [BlobStorage] over the kv table of db.
// The schema must already be migrated.
func NewSQLiteBlobStorage(db *DB) BlobStorage {
	return &sqliteBlobStorage{DB: db, now: time.Now}
}

func (s *sqliteBlobStorage) Read(ctx context.Context, key string) ([]byte, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReadBlobQuery(key)
	if err != nil {
		log.Err(err).Str("func", "sqliteBlobStorage.Read").Msg("error building query")
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteBlobStorage.Read").Str("key", key).Msg("failed to read blob")
		return nil, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, true, nil
}

func (s *sqliteBlobStorage) Write(ctx context.Context, key string, blob []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildWriteBlobQuery(key, blob, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "sqliteBlobStorage.Write").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteBlobStorage.Write").Str("key", key).Msg("failed to write blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "sqliteBlobStorage.Write").Str("key", key).Int("bytes", len(blob)).Msg("blob written")
	return nil
}
