// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteService is the contract the presentation layer drives. Every user
// intent maps to one method; [NoteService.Snapshot] is the only read path.
type NoteService interface {
	// LoadInitial reads the stored collection once at start. Nothing is
	// written before it completes.
	LoadInitial(ctx context.Context) error
	// Persist writes the whole collection.
	Persist(ctx context.Context) error
	// Flush persists only when the previous write failed.
	Flush(ctx context.Context) error

	// SaveDraft commits the draft. saved is false when the draft is blank.
	SaveDraft(ctx context.Context) (saved bool, err error)
	// DeleteNote removes the note with id. Unknown ids are ignored.
	DeleteNote(ctx context.Context, id models.NoteID) error
	// BeginEdit loads the note with id into the draft. It reports false
	// for an unknown id.
	BeginEdit(id models.NoteID) bool
	// NewNote opens an empty draft.
	NewNote()
	// Cancel drops the draft.
	Cancel()

	SetTitle(title string)
	SetContent(content string)
	SetTagInput(raw string)
	// CommitTagInput replaces the draft tags with the parsed tag input.
	CommitTagInput()
	// RemoveTag drops every occurrence of tag from the draft.
	RemoveTag(tag string)

	SetSearchQuery(query string)
	SetFilterTag(tag string)

	// Snapshot returns a copy of everything the view renders.
	Snapshot() ViewState
	// Notes returns a copy of the full collection in stored order.
	Notes() []models.Note
}

// IDGenerator hands out note ids.
type IDGenerator interface {
	// Next returns an id greater than every id returned or observed so far.
	Next() models.NoteID
	// Observe records an id that already exists.
	Observe(id models.NoteID)
}

// Flusher is what [FlushJob] drives.
type Flusher interface {
	Flush(ctx context.Context) error
}

// FlushJob defines the contract for a background worker that periodically
// retries failed writes.
type FlushJob interface {
	// Start launches the background goroutine. It flushes every interval,
	// defaulting to 30 seconds if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
