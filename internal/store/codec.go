// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// noteRecord is the stored shape of a single note.
type noteRecord struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
}

// EncodeNotes serializes notes as a JSON array, preserving order. createdAt
// is written in UTC with nanosecond precision so decoding is lossless.
func EncodeNotes(notes []models.Note) ([]byte, error) {
	records := make([]noteRecord, 0, len(notes))
	for _, n := range notes {
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		records = append(records, noteRecord{
			ID:        int64(n.ID),
			Title:     n.Title,
			Content:   n.Content,
			Tags:      tags,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
	}

	blob, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("error encoding notes: %w", err)
	}
	return blob, nil
}

// DecodeNotes parses a blob written by [EncodeNotes]. A JSON null decodes to
// an empty collection; null tags decode to an empty list.
func DecodeNotes(blob []byte) ([]models.Note, error) {
	var records []noteRecord
	if err := json.Unmarshal(blob, &records); err != nil {
		return nil, fmt.Errorf("error decoding notes: %w", err)
	}

	notes := make([]models.Note, 0, len(records))
	seen := make(map[models.NoteID]struct{}, len(records))
	for i, r := range records {
		id := models.NoteID(r.ID)
		if id <= 0 {
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidNoteID, r.ID, i)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNoteID, r.ID)
		}
		seen[id] = struct{}{}

		createdAt, err := time.Parse(time.RFC3339Nano, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: note %d: %w", ErrInvalidCreatedAt, r.ID, err)
		}

		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}

		notes = append(notes, models.Note{
			ID:        id,
			Title:     r.Title,
			Content:   r.Content,
			Tags:      tags,
			CreatedAt: createdAt.UTC(),
		})
	}

	return notes, nil
}
