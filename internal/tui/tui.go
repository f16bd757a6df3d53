// Package tui is the terminal front end of the note keeper. Every key press
// maps to one call on [service.NoteService] and every frame is rendered from
// its snapshot.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNilService is returned by [New] without a note service.
var ErrNilService = errors.New("tui: nil note service")

type TUI struct {
	notes     service.NoteService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(notes service.NoteService, buildInfo models.AppBuildInfo, log *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if notes == nil {
		return nil, ErrNilService
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{notes: notes, buildInfo: buildInfo, logger: log, options: opts}, nil
}

// Run blocks until the user quits or ctx is done. A non-nil notice is shown
// in the error overlay on the first frame.
func (t *TUI) Run(ctx context.Context, notice error) error {
	model := newAppModel(ctx, t.notes, t.buildInfo)
	if notice != nil {
		model.showErrorf(humanizeError(notice))
	}

	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.options...)
	_, err := tea.NewProgram(model, opts...).Run()
	if err == nil {
		return nil
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Msg("tui stopped by context")
		return nil
	}
	return fmt.Errorf("tui: %w", err)
}
