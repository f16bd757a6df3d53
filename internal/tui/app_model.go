package tui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenEditor
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	notes         service.NoteService
	buildInfo     models.AppBuildInfo
	currentScreen screen
	width         int

	list   listModel
	editor editorModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.NoteID
	showBuildInfo bool
}

func newAppModel(ctx context.Context, notes service.NoteService, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:           ctx,
		notes:         notes,
		buildInfo:     buildInfo,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.interrupt) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				m.pendingDelete = 0
				if id == 0 {
					return m, nil
				}
				m.list.saving = true
				return m, tea.Batch(m.list.spinner.Tick, m.cmdDeleteNote(id))
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case noteSavedMsg:
		m.editor.submitting = false
		m.list.saving = false
		if !msg.saved {
			m.editor.status = "Nothing to save: title and content are empty."
			return m, nil
		}
		m.currentScreen = screenList
		m.list.clamp(len(m.notes.Snapshot().Notes))
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case noteDeletedMsg:
		m.list.saving = false
		m.list.clamp(len(m.notes.Snapshot().Notes))
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case copiedMsg:
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clipboardFailedMsg:
		m.showErrorf(humanizeError(msg.err))
		return m, nil
	case clearStatusMsg:
		m.list.status = ""
		m.editor.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.list.saving {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor.setWidth(msg.Width)
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenEditor:
		return m.updateEditor(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	view := m.notes.Snapshot()

	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View(view)
	case screenEditor:
		body = m.editor.View(view)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if m.list.searching {
		return m.updateSearch(msg)
	}
	if !ok {
		return m, nil
	}

	view := m.notes.Snapshot()
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(view.Notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		cmd := m.list.search.Focus()
		return m, cmd
	case key.Matches(keyMsg, keys.nextTag):
		m.notes.SetFilterTag(cycleTag(view.Tags, view.FilterTag, 1))
		m.list.idx = 0
	case key.Matches(keyMsg, keys.prevTag):
		m.notes.SetFilterTag(cycleTag(view.Tags, view.FilterTag, -1))
		m.list.idx = 0
	case key.Matches(keyMsg, keys.clearTag):
		m.notes.SetFilterTag("")
		m.notes.SetSearchQuery("")
		m.list.search.SetValue("")
		m.list.idx = 0
	case key.Matches(keyMsg, keys.newNote):
		m.notes.NewNote()
		return m.openEditor()
	case key.Matches(keyMsg, keys.edit):
		note, ok := m.list.current(view)
		if !ok || !m.notes.BeginEdit(note.ID) {
			return m, nil
		}
		return m.openEditor()
	case key.Matches(keyMsg, keys.delete):
		note, ok := m.list.current(view)
		if !ok {
			return m, nil
		}
		m.pendingDelete = note.ID
		m.confirm.message = fitText(noteName(note), 40)
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		note, ok := m.list.current(view)
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(note.Content)
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.notes.SetSearchQuery(m.list.search.Value())
	m.list.clamp(len(m.notes.Snapshot().Notes))
	return m, cmd
}

func (m appModel) openEditor() (tea.Model, tea.Cmd) {
	m.editor = newEditorModel(m.notes.Snapshot(), m.width)
	m.currentScreen = screenEditor
	return m, textinput.Blink
}

func (m appModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.editor.submitting {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.notes.Cancel()
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.editor.focus == fieldTags {
				m.notes.CommitTagInput()
			}
			m.editor.submitting = true
			return m, m.cmdSaveDraft()
		case key.Matches(keyMsg, keys.tab):
			m.leaveField()
			cmd := m.editor.setFocus(m.editor.focus + 1)
			return m, cmd
		case key.Matches(keyMsg, keys.backtab):
			m.leaveField()
			cmd := m.editor.setFocus(m.editor.focus - 1)
			return m, cmd
		case key.Matches(keyMsg, keys.nextChip):
			tags := m.notes.Snapshot().Draft.Tags
			if len(tags) > 0 {
				m.editor.chip = (m.editor.chip + 1) % len(tags)
			}
			return m, nil
		case key.Matches(keyMsg, keys.removeTag):
			view := m.notes.Snapshot()
			m.editor.clampChip(len(view.Draft.Tags))
			if len(view.Draft.Tags) == 0 {
				return m, nil
			}
			m.notes.RemoveTag(view.Draft.Tags[m.editor.chip])
			view = m.notes.Snapshot()
			m.editor.tags.SetValue(view.TagInput)
			m.editor.clampChip(len(view.Draft.Tags))
			return m, nil
		}
	}

	cmd := m.editor.update(msg)
	switch m.editor.focus {
	case fieldTitle:
		m.notes.SetTitle(m.editor.title.Value())
	case fieldContent:
		m.notes.SetContent(m.editor.content.Value())
	case fieldTags:
		m.notes.SetTagInput(m.editor.tags.Value())
	}
	return m, cmd
}

// leaveField commits the tag input when focus moves off the tag field.
func (m *appModel) leaveField() {
	if m.editor.focus != fieldTags {
		return
	}
	m.notes.CommitTagInput()
	m.editor.clampChip(len(m.notes.Snapshot().Draft.Tags))
}

func (m appModel) cmdSaveDraft() tea.Cmd {
	ctx := m.ctx
	svc := m.notes
	return func() tea.Msg {
		saved, err := svc.SaveDraft(ctx)
		return noteSavedMsg{saved: saved, err: err}
	}
}

func (m appModel) cmdDeleteNote(id models.NoteID) tea.Cmd {
	ctx := m.ctx
	svc := m.notes
	return func() tea.Msg {
		err := svc.DeleteNote(ctx, id)
		return noteDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return clipboardFailedMsg{err: fmt.Errorf("%w: %w", errClipboard, err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// cycleTag returns the filter tag step positions away from current, where
// the position after the last tag is "no filter". A current tag missing
// from tags starts the cycle over.
func cycleTag(tags []string, current string, step int) string {
	if len(tags) == 0 {
		return ""
	}
	pos := len(tags)
	if current != "" {
		if i := slices.Index(tags, current); i >= 0 {
			pos = i
		}
	}
	n := len(tags) + 1
	pos = ((pos+step)%n + n) % n
	if pos == len(tags) {
		return ""
	}
	return tags[pos]
}

func noteName(n models.Note) string {
	if name := firstLine(n.Title); name != "" {
		return name
	}
	return firstLine(n.Content)
}
