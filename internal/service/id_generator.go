// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
)

type monotonicIDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewMonotonicIDGenerator returns an [IDGenerator] whose ids are the current
// Unix time in milliseconds, bumped past the previous id when two notes are
// created within the same millisecond. A nil now uses time.Now.
func NewMonotonicIDGenerator(now func() time.Time) IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &monotonicIDGenerator{now: now}
}

func (g *monotonicIDGenerator) Next() models.NoteID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return models.NoteID(id)
}

func (g *monotonicIDGenerator) Observe(id models.NoteID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if int64(id) > g.last {
		g.last = int64(id)
	}
}
