// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNote_HasTag(t *testing.T) {
	n := Note{Tags: []string{"work", "Home"}}

	assert.True(t, n.HasTag("work"))
	assert.True(t, n.HasTag("Home"))
	assert.False(t, n.HasTag("home"), "tag match is case-sensitive")
	assert.False(t, n.HasTag("wor"), "tag match is not a substring match")
}

func TestNote_Clone_DoesNotAliasTags(t *testing.T) {
	n := Note{ID: 1, Tags: []string{"a", "b"}, CreatedAt: time.Now()}

	c := n.Clone()
	c.Tags[0] = "changed"

	assert.Equal(t, "a", n.Tags[0])
	assert.Equal(t, n.ID, c.ID)
}

func TestDraftFromNote(t *testing.T) {
	n := Note{ID: 42, Title: "T", Content: "C", Tags: []string{"x"}}

	d := DraftFromNote(n)

	require.NotNil(t, d.ID)
	assert.Equal(t, NoteID(42), *d.ID)
	assert.False(t, d.IsNew())
	assert.Equal(t, "T", d.Title)
	assert.Equal(t, "C", d.Content)

	d.Tags = append(d.Tags[:0], "y")
	assert.Equal(t, []string{"x"}, n.Tags, "editing draft tags must not touch the stored note")
}

func TestDraft_Clone(t *testing.T) {
	id := NoteID(7)
	d := Draft{ID: &id, Tags: []string{"a"}}

	c := d.Clone()
	*c.ID = 8
	c.Tags[0] = "b"

	assert.Equal(t, NoteID(7), *d.ID)
	assert.Equal(t, "a", d.Tags[0])
}

func TestDraft_NilTagsCloneToEmpty(t *testing.T) {
	d := Draft{}

	c := d.Clone()

	assert.True(t, c.IsNew())
	assert.NotNil(t, c.Tags)
	assert.Empty(t, c.Tags)
}
