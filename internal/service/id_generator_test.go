package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-keeper/models"
)

func TestMonotonicIDGenerator_SameMillisecond(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	g := NewMonotonicIDGenerator(func() time.Time { return now })

	assert.Equal(t, models.NoteID(1_700_000_000_000), g.Next())
	assert.Equal(t, models.NoteID(1_700_000_000_001), g.Next())
	assert.Equal(t, models.NoteID(1_700_000_000_002), g.Next())
}

func TestMonotonicIDGenerator_ClockGoesBack(t *testing.T) {
	now := time.UnixMilli(2_000)
	g := NewMonotonicIDGenerator(func() time.Time { return now })

	first := g.Next()
	now = time.UnixMilli(1_000)
	assert.Greater(t, g.Next(), first)
}

func TestMonotonicIDGenerator_Observe(t *testing.T) {
	g := NewMonotonicIDGenerator(func() time.Time { return time.UnixMilli(10) })

	g.Observe(500)
	g.Observe(20)
	assert.Equal(t, models.NoteID(501), g.Next())
}

func TestMonotonicIDGenerator_Concurrent(t *testing.T) {
	g := NewMonotonicIDGenerator(nil)

	var mu sync.Mutex
	seen := make(map[models.NoteID]struct{})
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				id := g.Next()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 800)
}
