// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// NoteID is the unique, immutable identifier of a note. Ids created by older
// builds are millisecond Unix timestamps, so the type stays an integer.
type NoteID int64

// Note is a single stored note.
type Note struct {
	// ID is assigned once when the note is first saved.
	ID NoteID `json:"id"`

	// Title may be empty.
	Title string `json:"title"`

	// Content may be empty.
	Content string `json:"content"`

	// Tags is an ordered list of labels. Values are stored with their
	// original case; search and filtering decide how to compare them.
	Tags []string `json:"tags"`

	// CreatedAt is set when the note is created and never changes.
	CreatedAt time.Time `json:"createdAt"`
}

// HasTag reports whether tag is present in the note exactly as given.
func (n Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// Clone returns a copy of n that does not share its Tags backing array.
func (n Note) Clone() Note {
	n.Tags = cloneTags(n.Tags)
	return n
}

// Draft is the editing buffer. A nil ID means a new note is being written;
// a non-nil ID means the note with that id is being edited.
type Draft struct {
	ID      *NoteID
	Title   string
	Content string
	Tags    []string
}

// IsNew reports whether the draft describes a note that has not been saved yet.
func (d Draft) IsNew() bool {
	return d.ID == nil
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	if d.ID != nil {
		id := *d.ID
		d.ID = &id
	}
	d.Tags = cloneTags(d.Tags)
	return d
}

// DraftFromNote copies note into a fresh draft for editing.
func DraftFromNote(note Note) Draft {
	id := note.ID
	return Draft{
		ID:      &id,
		Title:   note.Title,
		Content: note.Content,
		Tags:    cloneTags(note.Tags),
	}
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return slices.Clone(tags)
}
