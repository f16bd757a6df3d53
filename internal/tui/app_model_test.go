package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/mock"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestModel(t *testing.T, seed ...models.Note) (appModel, *service.NoteStore) {
	t.Helper()
	ctx := context.Background()

	repo := store.NewNoteRepository(store.NewMemoryBlobStorage(), "notes")
	if len(seed) > 0 {
		require.NoError(t, repo.Save(ctx, seed))
	}
	s := service.NewNoteStore(repo)
	require.NoError(t, s.LoadInitial(ctx))

	return newAppModel(ctx, s, models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123")), s
}

func note(id models.NoteID, title, content string, tags ...string) models.Note {
	if tags == nil {
		tags = []string{}
	}
	return models.Note{
		ID:        id,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// send feeds msg to m and then resolves the note and clipboard commands it
// returned, one level deep.
func send(m appModel, msg tea.Msg) appModel {
	next, cmd := m.Update(msg)
	m = next.(appModel)
	return drive(m, cmd)
}

func drive(m appModel, cmd tea.Cmd) appModel {
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drive(m, c)
		}
	case noteSavedMsg, noteDeletedMsg, copiedMsg, clipboardFailedMsg:
		next, _ := m.Update(msg)
		m = next.(appModel)
	}
	return m
}

func typeText(m appModel, s string) appModel {
	for _, r := range s {
		m = send(m, runes(string(r)))
	}
	return m
}

// ── list ─────────────────────────────────────────────────────────────────────

func TestList_EmptyStates(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Contains(t, m.View(), emptyCollectionText)

	m, s := newTestModel(t, note(1, "Groceries", "milk"))
	s.SetSearchQuery("nothing like this")
	assert.Contains(t, m.View(), emptyFilterText)
	assert.NotContains(t, m.View(), emptyCollectionText)
}

func TestNoteLine(t *testing.T) {
	tests := []struct {
		name     string
		note     models.Note
		contains []string
		excludes []string
	}{
		{
			name:     "title with preview",
			note:     note(1, "Groceries", "\n  milk and eggs\nbread", "home"),
			contains: []string{"Groceries", "milk and eggs", "[home]", "2026-01-01"},
			excludes: []string{"bread", untitledText},
		},
		{
			name:     "content stands in for title",
			note:     note(2, "  ", "first line\nsecond line"),
			contains: []string{"first line"},
			excludes: []string{"second line", untitledText},
		},
		{
			name:     "empty note",
			note:     note(3, "", " \n "),
			contains: []string{untitledText},
		},
		{
			name:     "zero creation date omitted",
			note:     models.Note{ID: 4, Title: "Plain"},
			contains: []string{"Plain"},
			excludes: []string{"0001-01-01"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := noteLine(tt.note)
			for _, want := range tt.contains {
				assert.Contains(t, line, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, line, unwanted)
			}
		})
	}
}

func TestList_ShowsPreviewAndUntitled(t *testing.T) {
	m, _ := newTestModel(t, note(1, "Groceries", "milk"), note(2, "", ""))
	view := m.View()
	assert.Contains(t, view, "milk")
	assert.Contains(t, view, untitledText)
}

func TestList_CursorMovesWithinBounds(t *testing.T) {
	m, _ := newTestModel(t, note(1, "a", "x"), note(2, "b", "y"))

	m = send(m, keyOf(tea.KeyUp))
	assert.Equal(t, 0, m.list.idx)

	m = send(m, runes("j"))
	m = send(m, runes("j"))
	assert.Equal(t, 1, m.list.idx)

	m = send(m, runes("k"))
	assert.Equal(t, 0, m.list.idx)
}

func TestList_Search(t *testing.T) {
	m, s := newTestModel(t, note(1, "Groceries", "milk"), note(2, "Work", "deadline"))

	m = send(m, runes("/"))
	require.True(t, m.list.searching)

	m = typeText(m, "MILK")
	assert.Equal(t, "MILK", s.Snapshot().SearchQuery)
	require.Len(t, s.Snapshot().Notes, 1)
	assert.Equal(t, models.NoteID(1), s.Snapshot().Notes[0].ID)

	m = send(m, keyOf(tea.KeyEsc))
	assert.False(t, m.list.searching)
	assert.Equal(t, "MILK", s.Snapshot().SearchQuery, "leaving the input keeps the query")

	m = send(m, runes("x"))
	assert.Empty(t, s.Snapshot().SearchQuery)
	assert.Empty(t, m.list.search.Value())
}

func TestList_TagFilterCycle(t *testing.T) {
	m, s := newTestModel(t, note(1, "a", "x", "work"), note(2, "b", "y", "home"))

	m = send(m, runes("t"))
	assert.Equal(t, "work", s.Snapshot().FilterTag)
	m = send(m, runes("t"))
	assert.Equal(t, "home", s.Snapshot().FilterTag)
	m = send(m, runes("t"))
	assert.Empty(t, s.Snapshot().FilterTag)

	m = send(m, runes("T"))
	assert.Equal(t, "home", s.Snapshot().FilterTag)

	send(m, runes("x"))
	assert.Empty(t, s.Snapshot().FilterTag)
}

func TestCycleTag(t *testing.T) {
	tags := []string{"a", "b", "c"}

	tests := []struct {
		name    string
		tags    []string
		current string
		step    int
		want    string
	}{
		{name: "no tags", tags: nil, current: "", step: 1, want: ""},
		{name: "from none forward", tags: tags, current: "", step: 1, want: "a"},
		{name: "from none backward", tags: tags, current: "", step: -1, want: "c"},
		{name: "middle forward", tags: tags, current: "b", step: 1, want: "c"},
		{name: "last forward is none", tags: tags, current: "c", step: 1, want: ""},
		{name: "first backward is none", tags: tags, current: "a", step: -1, want: ""},
		{name: "stale tag restarts", tags: tags, current: "gone", step: 1, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cycleTag(tt.tags, tt.current, tt.step))
		})
	}
}

func TestList_DeleteWithConfirm(t *testing.T) {
	m, s := newTestModel(t, note(1, "Groceries", "milk"))

	m = send(m, runes("d"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete "Groceries"?`)

	m = send(m, runes("n"))
	assert.False(t, m.showConfirm)
	assert.Len(t, s.Notes(), 1)

	m = send(m, runes("d"))
	m = send(m, runes("y"))
	assert.False(t, m.showConfirm)
	assert.False(t, m.list.saving)
	assert.Empty(t, s.Notes())
	assert.Contains(t, m.View(), emptyCollectionText)
}

func TestList_DeleteOnEmptyListDoesNothing(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, runes("d"))
	assert.False(t, m.showConfirm)
}

func TestList_Copy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := newTestModel(t, note(1, "Groceries", "milk and eggs"))
	m = send(m, runes("c"))

	assert.Equal(t, "milk and eggs", copied)
	assert.Equal(t, "Copied!", m.list.status)
}

func TestList_CopyFailureShowsOverlay(t *testing.T) {
	orig := writeClipboard
	writeClipboard = func(string) error { return errors.New("no xclip") }
	t.Cleanup(func() { writeClipboard = orig })

	m, _ := newTestModel(t, note(1, "Groceries", "milk"))
	m = send(m, runes("c"))

	require.True(t, m.showError)
	assert.Equal(t, app.MsgClipboardFailed, m.errorOverlay.message)
}

func TestBuildInfoOverlay(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(m, runes("v"))
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "abc123")

	m = send(m, runes("n"))
	assert.Equal(t, screenList, m.currentScreen, "keys are swallowed while the overlay is open")

	m = send(m, keyOf(tea.KeyEsc))
	assert.False(t, m.showBuildInfo)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// ── editor ───────────────────────────────────────────────────────────────────

func TestEditor_NewNoteFlow(t *testing.T) {
	m, s := newTestModel(t)

	m = send(m, runes("n"))
	require.Equal(t, screenEditor, m.currentScreen)
	assert.False(t, m.editor.existing)

	m = typeText(m, "Groceries")
	m = send(m, keyOf(tea.KeyTab))
	m = typeText(m, "milk")
	m = send(m, keyOf(tea.KeyTab))
	m = typeText(m, "home, food, home")
	m = send(m, keyOf(tea.KeyCtrlS))

	assert.Equal(t, screenList, m.currentScreen)
	notes := s.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Groceries", notes[0].Title)
	assert.Equal(t, "milk", notes[0].Content)
	assert.Equal(t, []string{"home", "food"}, notes[0].Tags, "tag input is committed before saving")
	assert.False(t, s.Snapshot().Editing)
}

func TestEditor_TagInputCommitsOnBlur(t *testing.T) {
	m, s := newTestModel(t)

	m = send(m, runes("n"))
	m = send(m, keyOf(tea.KeyShiftTab))
	require.Equal(t, fieldTags, m.editor.focus)

	m = typeText(m, "a, b")
	assert.Empty(t, s.Snapshot().Draft.Tags)

	m = send(m, keyOf(tea.KeyTab))
	assert.Equal(t, fieldTitle, m.editor.focus)
	assert.Equal(t, []string{"a", "b"}, s.Snapshot().Draft.Tags)
}

func TestEditor_BlankSaveStays(t *testing.T) {
	m, s := newTestModel(t)

	m = send(m, runes("n"))
	m = typeText(m, "   ")
	m = send(m, keyOf(tea.KeyCtrlS))

	assert.Equal(t, screenEditor, m.currentScreen)
	assert.NotEmpty(t, m.editor.status)
	assert.Empty(t, s.Notes())
}

func TestEditor_Cancel(t *testing.T) {
	m, s := newTestModel(t)

	m = send(m, runes("n"))
	m = typeText(m, "draft")
	m = send(m, keyOf(tea.KeyEsc))

	assert.Equal(t, screenList, m.currentScreen)
	assert.Empty(t, s.Notes())
	assert.False(t, s.Snapshot().Editing)
	assert.Empty(t, s.Snapshot().Draft.Title)
}

func TestEditor_EditExisting(t *testing.T) {
	original := note(7, "Title", "body", "x")
	m, s := newTestModel(t, original)

	m = send(m, runes("e"))
	require.Equal(t, screenEditor, m.currentScreen)
	assert.True(t, m.editor.existing)
	assert.Equal(t, "Title", m.editor.title.Value())
	assert.Equal(t, "x", m.editor.tags.Value())

	m = typeText(m, "!")
	m = send(m, keyOf(tea.KeyCtrlS))

	notes := s.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, original.ID, notes[0].ID)
	assert.Equal(t, original.CreatedAt, notes[0].CreatedAt)
	assert.Equal(t, "Title!", notes[0].Title)
}

func TestEditor_LongTitleKept(t *testing.T) {
	long := strings.Repeat("a", 250)
	m, s := newTestModel(t, note(3, long, "body"))

	m = send(m, runes("e"))
	require.Equal(t, screenEditor, m.currentScreen)
	assert.Equal(t, long, m.editor.title.Value())

	m = typeText(m, "!")
	m = send(m, keyOf(tea.KeyCtrlS))

	notes := s.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, long+"!", notes[0].Title)
	assert.Len(t, []rune(notes[0].Title), 251)
}

func TestEditor_RemoveSelectedChip(t *testing.T) {
	m, s := newTestModel(t, note(1, "t", "c", "a", "b", "c"))

	m = send(m, keyOf(tea.KeyEnter))
	require.Equal(t, screenEditor, m.currentScreen)

	m = send(m, keyOf(tea.KeyCtrlT))
	assert.Equal(t, 1, m.editor.chip)

	m = send(m, keyOf(tea.KeyCtrlR))
	assert.Equal(t, []string{"a", "c"}, s.Snapshot().Draft.Tags)
	assert.Equal(t, "a, c", m.editor.tags.Value())

	m = send(m, keyOf(tea.KeyCtrlR))
	assert.Equal(t, []string{"a"}, s.Snapshot().Draft.Tags)
	assert.Equal(t, 0, m.editor.chip)

	m = send(m, keyOf(tea.KeyCtrlR))
	m = send(m, keyOf(tea.KeyCtrlR))
	assert.Empty(t, s.Snapshot().Draft.Tags)
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestEditor_SaveFailureShowsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockNoteRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(nil, false, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	ctx := context.Background()
	s := service.NewNoteStore(repo)
	require.NoError(t, s.LoadInitial(ctx))
	m := newAppModel(ctx, s, models.AppBuildInfo{})

	m = send(m, runes("n"))
	m = typeText(m, "kept")
	m = send(m, keyOf(tea.KeyCtrlS))

	assert.Equal(t, screenList, m.currentScreen)
	require.True(t, m.showError)
	assert.Equal(t, app.MsgNotesSaveFailed, m.errorOverlay.message)
	assert.Contains(t, m.View(), "unsaved changes")
	assert.Len(t, s.Notes(), 1, "the note stays in memory")

	m = send(m, runes("n"))
	assert.Equal(t, screenList, m.currentScreen, "overlay swallows keys")

	m = send(m, keyOf(tea.KeyEnter))
	assert.False(t, m.showError)
}

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, app.MsgClipboardFailed, humanizeError(errClipboard))
	assert.Equal(t, app.MsgNotesCorrupt, humanizeError(&service.CorruptStateError{Err: errors.New("bad")}))
	assert.Equal(t, app.MsgUnexpectedError, humanizeError(errors.New("boom")))
}
