// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// TagUniverse returns every tag used by notes, deduplicated, in order of
// first appearance.
func TagUniverse(notes []models.Note) []string {
	tags := make([]string, 0)
	seen := make(map[string]struct{})

	for _, n := range notes {
		for _, tag := range n.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}

// FilterNotes returns the notes matching query and tag, in collection order.
//
// An empty query matches everything; otherwise the lowercased query must be
// a substring of the lowercased title, content or any tag. An empty tag
// matches everything; otherwise the note must carry exactly that tag.
func FilterNotes(notes []models.Note, query, tag string) []models.Note {
	query = strings.ToLower(query)

	filtered := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if matchesQuery(n, query) && matchesTag(n, tag) {
			filtered = append(filtered, n)
		}
	}

	return filtered
}

// matchesQuery expects query to be lowercased already.
func matchesQuery(n models.Note, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), query) ||
		strings.Contains(strings.ToLower(n.Content), query) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func matchesTag(n models.Note, tag string) bool {
	return tag == "" || n.HasTag(tag)
}
