package tui

import (
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type editorField int

const (
	fieldTitle editorField = iota
	fieldContent
	fieldTags
	editorFieldCount
)

const (
	defaultInputWidth = 60
	contentHeight     = 8
)

type editorModel struct {
	title   textinput.Model
	content textarea.Model
	tags    textinput.Model

	focus      editorField
	chip       int
	existing   bool
	submitting bool
	status     string
}

// newEditorModel fills the inputs from the draft held in view.
func newEditorModel(view service.ViewState, width int) editorModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 0
	title.SetValue(view.Draft.Title)

	content := textarea.New()
	content.Placeholder = "Write your note..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetHeight(contentHeight)
	content.SetValue(view.Draft.Content)

	tags := textinput.New()
	tags.Placeholder = "work, ideas"
	tags.SetValue(view.TagInput)

	m := editorModel{
		title:    title,
		content:  content,
		tags:     tags,
		existing: !view.Draft.IsNew(),
	}
	m.setWidth(width)
	m.title.Focus()
	return m
}

func (m *editorModel) setWidth(width int) {
	w := width - 8
	if w <= 0 {
		w = defaultInputWidth
	}
	m.title.Width = w
	m.content.SetWidth(w)
	m.tags.Width = w
}

// setFocus moves focus to field and returns the blink command of the
// focused input.
func (m *editorModel) setFocus(field editorField) tea.Cmd {
	m.title.Blur()
	m.content.Blur()
	m.tags.Blur()

	m.focus = (field + editorFieldCount) % editorFieldCount
	switch m.focus {
	case fieldContent:
		return m.content.Focus()
	case fieldTags:
		return m.tags.Focus()
	default:
		return m.title.Focus()
	}
}

// update forwards msg to the focused input.
func (m *editorModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldContent:
		m.content, cmd = m.content.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
	default:
		m.title, cmd = m.title.Update(msg)
	}
	return cmd
}

func (m *editorModel) clampChip(n int) {
	if m.chip >= n {
		m.chip = n - 1
	}
	if m.chip < 0 {
		m.chip = 0
	}
}

func (m editorModel) View(view service.ViewState) string {
	heading := "New note"
	if m.existing {
		heading = "Edit: " + fitText(view.Draft.Title, 40)
	}

	var b strings.Builder
	b.WriteString(fieldLabel("Title", m.focus == fieldTitle))
	b.WriteString(m.title.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Content", m.focus == fieldContent))
	b.WriteString(m.content.View())
	b.WriteString("\n\n")
	b.WriteString(fieldLabel("Tags", m.focus == fieldTags))
	b.WriteString(m.tags.View())
	b.WriteString("\n")
	b.WriteString(renderChips(view.Draft.Tags, m.chip))

	if m.submitting {
		b.WriteString("\n\nSaving...")
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage(titleStyle.Render(heading), b.String(),
		"ctrl+s save  tab next field  ctrl+t next tag  ctrl+r remove tag  esc cancel")
}

func fieldLabel(name string, focused bool) string {
	if focused {
		return cursorStyle.Render("> "+name) + "\n"
	}
	return "  " + name + "\n"
}

func renderChips(tags []string, selected int) string {
	if len(tags) == 0 {
		return helpStyle.Render("no tags")
	}
	chips := make([]string, 0, len(tags))
	for i, tag := range tags {
		if i == selected {
			chips = append(chips, activeChipStyle.Render(tag))
			continue
		}
		chips = append(chips, chipStyle.Render(tag))
	}
	return strings.Join(chips, " ")
}
