package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	emptyCollectionText = "No notes yet. Press n to write one."
	emptyFilterText     = "No notes match the current search or tag."
)

type listModel struct {
	search    textinput.Model
	searching bool
	idx       int
	saving    bool
	spinner   spinner.Model
	status    string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search title, content, tags"

	return listModel{search: search, spinner: s}
}

func (m listModel) current(view service.ViewState) (models.Note, bool) {
	if len(view.Notes) == 0 || m.idx < 0 || m.idx >= len(view.Notes) {
		return models.Note{}, false
	}
	return view.Notes[m.idx], true
}

func (m *listModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) View(view service.ViewState) string {
	header := titleStyle.Render("Notes")
	header += fmt.Sprintf("  %d/%d", len(view.Notes), view.Total)
	if m.saving {
		header += "  " + m.spinner.View()
	}
	if view.Dirty {
		header += "  " + dirtyStyle.Render("unsaved changes")
	}

	var b strings.Builder
	if m.searching || view.SearchQuery != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if view.FilterTag != "" {
		b.WriteString("tag: " + chipStyle.Render(view.FilterTag))
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	switch {
	case view.Total == 0:
		b.WriteString(emptyCollectionText)
	case len(view.Notes) == 0:
		b.WriteString(emptyFilterText)
	default:
		for i, note := range view.Notes {
			cursor := "  "
			line := noteLine(note)
			if i == m.idx {
				cursor = "> "
				line = cursorStyle.Render(line)
			}
			b.WriteString(cursor + line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	hotKeys := "n new  e edit  d delete  c copy  / search  t/T tag  x clear  v about  q quit"
	if m.searching {
		hotKeys = "enter / esc done"
	}
	return renderPage(header, b.String(), hotKeys)
}

const untitledText = "Untitled"

// noteLine renders one list row: title, content preview, tags and creation date.
// A note without a title shows its first content line in the title slot.
func noteLine(n models.Note) string {
	title := strings.TrimSpace(n.Title)
	preview := firstLine(n.Content)
	if title == "" {
		title, preview = preview, ""
	}
	if title == "" {
		title = untitledText
	}
	line := fitText(title, 50)
	if preview != "" {
		line += "  " + helpStyle.Render(fitText(preview, 40))
	}
	if len(n.Tags) > 0 {
		line += "  " + helpStyle.Render("["+service.JoinTags(n.Tags)+"]")
	}
	if !n.CreatedAt.IsZero() {
		line += "  " + helpStyle.Render(n.CreatedAt.Format("2006-01-02"))
	}
	return line
}
