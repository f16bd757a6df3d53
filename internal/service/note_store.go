// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ViewState is everything the presentation layer renders, copied out of
// the store.
type ViewState struct {
	// Notes is the filtered view in collection order.
	Notes []models.Note
	// Tags is the tag universe of the whole collection.
	Tags  []string
	Draft models.Draft
	// TagInput is the raw comma-separated tag text being edited.
	TagInput    string
	Editing     bool
	SearchQuery string
	FilterTag   string
	// Total is the size of the unfiltered collection.
	Total int
	// Dirty is set while the last write has not reached storage.
	Dirty bool
}

// NoteStore owns the note collection and the editing draft.
//
// Before LoadInitial completes nothing is written. After it, every mutation
// writes the whole collection, an empty one included.
type NoteStore struct {
	repo store.NoteRepository
	ids  IDGenerator
	now  func() time.Time

	mu          sync.Mutex
	notes       []models.Note
	draft       models.Draft
	tagInput    string
	editing     bool
	searchQuery string
	filterTag   string
	loaded      bool
	dirty       bool
}

var _ NoteService = (*NoteStore)(nil)

// Option configures a [NoteStore].
type Option func(*NoteStore)

// WithIDGenerator replaces the default monotonic id generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *NoteStore) { s.ids = ids }
}

// WithClock sets the source of createdAt timestamps and default ids.
func WithClock(now func() time.Time) Option {
	return func(s *NoteStore) { s.now = now }
}

// NewNoteStore creates an empty, unloaded NoteStore over repo.
func NewNoteStore(repo store.NoteRepository, opts ...Option) *NoteStore {
	s := &NoteStore{
		repo:  repo,
		now:   time.Now,
		notes: []models.Note{},
		draft: emptyDraft(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewMonotonicIDGenerator(s.now)
	}
	return s
}

func (s *NoteStore) LoadInitial(ctx context.Context) error {
	log := logger.FromContext(ctx).With().Str("func", "NoteStore.LoadInitial").Logger()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return ErrAlreadyLoaded
	}

	notes, found, err := s.repo.Load(ctx)

	var decodeErr *store.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		corrupt := &CorruptStateError{Err: decodeErr.Err}
		if backupErr := s.repo.Backup(ctx, decodeErr.Blob); backupErr != nil {
			corrupt.BackupErr = backupErr
			log.Error().Err(corrupt).Msg("stored notes are corrupt and could not be backed up")
			return corrupt
		}
		log.Error().Err(corrupt).Int("bytes", len(decodeErr.Blob)).Msg("stored notes are corrupt, starting empty")
		s.notes = []models.Note{}
		s.loaded = true
		return corrupt
	case err != nil:
		log.Err(err).Msg("failed to load notes")
		return fmt.Errorf("error loading notes: %w", err)
	}

	if !found || notes == nil {
		notes = []models.Note{}
	}
	for _, n := range notes {
		s.ids.Observe(n.ID)
	}

	s.notes = notes
	s.loaded = true
	log.Info().Int("count", len(notes)).Bool("found", found).Msg("notes loaded")
	return nil
}

func (s *NoteStore) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.persistLocked(ctx, "persist")
}

func (s *NoteStore) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	return s.persistLocked(ctx, "flush")
}

func (s *NoteStore) SaveDraft(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draft.Clone()
	if strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == "" {
		return false, nil
	}

	notes := cloneNotes(s.notes)
	idx := -1
	if d.ID != nil {
		idx = indexOf(notes, *d.ID)
	}

	if idx >= 0 {
		notes[idx].Title = d.Title
		notes[idx].Content = d.Content
		notes[idx].Tags = d.Tags
	} else {
		notes = append(notes, models.Note{
			ID:        s.ids.Next(),
			Title:     d.Title,
			Content:   d.Content,
			Tags:      d.Tags,
			CreatedAt: s.now().UTC(),
		})
	}

	s.notes = notes
	s.resetDraftLocked()

	return true, s.persistLocked(ctx, "save")
}

func (s *NoteStore) DeleteNote(ctx context.Context, id models.NoteID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.notes, id)
	if idx < 0 {
		return nil
	}

	s.notes = slices.Delete(cloneNotes(s.notes), idx, idx+1)
	return s.persistLocked(ctx, "delete")
}

func (s *NoteStore) BeginEdit(id models.NoteID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.notes, id)
	if idx < 0 {
		return false
	}

	s.draft = models.DraftFromNote(s.notes[idx])
	s.tagInput = JoinTags(s.draft.Tags)
	s.editing = true
	return true
}

func (s *NoteStore) NewNote() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = emptyDraft()
	s.tagInput = ""
	s.editing = true
}

func (s *NoteStore) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetDraftLocked()
}

func (s *NoteStore) SetTitle(title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Title = title
}

func (s *NoteStore) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Content = content
}

func (s *NoteStore) SetTagInput(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tagInput = raw
}

func (s *NoteStore) CommitTagInput() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(s.tagInput) == "" {
		return
	}
	s.draft.Tags = ParseTags(s.tagInput)
}

func (s *NoteStore) RemoveTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft.Tags = removeTag(s.draft.Tags, tag)
	s.tagInput = JoinTags(s.draft.Tags)
}

func (s *NoteStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchQuery = query
}

func (s *NoteStore) SetFilterTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filterTag = tag
}

func (s *NoteStore) Snapshot() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := cloneNotes(s.notes)
	return ViewState{
		Notes:       FilterNotes(notes, s.searchQuery, s.filterTag),
		Tags:        TagUniverse(notes),
		Draft:       s.draft.Clone(),
		TagInput:    s.tagInput,
		Editing:     s.editing,
		SearchQuery: s.searchQuery,
		FilterTag:   s.filterTag,
		Total:       len(notes),
		Dirty:       s.dirty,
	}
}

func (s *NoteStore) Notes() []models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneNotes(s.notes)
}

// persistLocked writes the collection. s.mu must be held.
func (s *NoteStore) persistLocked(ctx context.Context, op string) error {
	log := logger.FromContext(ctx)

	if !s.loaded {
		log.Debug().Str("func", "NoteStore.persist").Str("op", op).Msg("not loaded yet, skipping write")
		return nil
	}

	if err := s.repo.Save(ctx, cloneNotes(s.notes)); err != nil {
		s.dirty = true
		log.Err(err).Str("func", "NoteStore.persist").Str("op", op).Int("count", len(s.notes)).Msg("failed to persist notes")
		return &PersistenceFailure{Op: op, Err: err}
	}

	if s.dirty {
		log.Info().Str("func", "NoteStore.persist").Str("op", op).Msg("pending notes written")
	}
	s.dirty = false
	return nil
}

func (s *NoteStore) resetDraftLocked() {
	s.draft = emptyDraft()
	s.tagInput = ""
	s.editing = false
}

func emptyDraft() models.Draft {
	return models.Draft{Tags: []string{}}
}

func indexOf(notes []models.Note, id models.NoteID) int {
	return slices.IndexFunc(notes, func(n models.Note) bool { return n.ID == id })
}

func cloneNotes(notes []models.Note) []models.Note {
	cloned := make([]models.Note, len(notes))
	for i, n := range notes {
		cloned[i] = n.Clone()
	}
	return cloned
}
