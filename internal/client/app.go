package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/export"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

var (
	ErrNilNoteService = errors.New("client: nil note service")
	ErrNilUI          = errors.New("client: nil ui")
	ErrNilConfig      = errors.New("client: nil config")
)

type App struct {
	notes    service.NoteService
	ui       UI
	flushJob service.FlushJob
	cfg      *config.ClientConfig
	out      io.Writer
	logger   *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the application. ui may be nil when cfg requests an export.
func NewApp(notes service.NoteService, ui UI, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if notes == nil {
		return nil, ErrNilNoteService
	}
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if ui == nil && !cfg.ExportRequested() {
		return nil, ErrNilUI
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		notes:    notes,
		ui:       ui,
		flushJob: service.NewFlushJob(notes),
		cfg:      cfg,
		out:      os.Stdout,
		logger:   log,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	notice, err := a.load(ctx)
	if err != nil {
		return err
	}

	if a.cfg.ExportRequested() {
		return a.export(ctx)
	}

	a.flushJob.Start(ctx, a.cfg.Workers.FlushInterval)
	uiErr := a.ui.Run(ctx, notice)
	a.flushJob.Stop()

	// the final write must happen even when ctx was cancelled by a signal
	flushErr := a.notes.Flush(context.WithoutCancel(ctx))
	if flushErr != nil {
		a.logger.Err(flushErr).Msg("final flush failed")
		flushErr = fmt.Errorf("%s: %w", app.MsgNotesSaveFailed, flushErr)
	}

	return errors.Join(uiErr, flushErr)
}

// load reads the stored collection. A corrupt collection that was backed up
// is returned as a notice for the user instead of an error.
func (a *App) load(ctx context.Context) (notice, err error) {
	err = a.notes.LoadInitial(ctx)
	if err == nil {
		return nil, nil
	}

	var corrupt *service.CorruptStateError
	if errors.As(err, &corrupt) {
		if corrupt.Recovered() {
			a.logger.Warn().Err(err).Msg("continuing with an empty collection")
			return err, nil
		}
		return nil, fmt.Errorf("%s: %w", app.MsgNotesCorruptNoBackup, err)
	}
	return nil, fmt.Errorf("%s: %w", app.MsgNotesLoadFailed, err)
}

func (a *App) export(ctx context.Context) error {
	dir := a.cfg.Export.Dir

	paths, err := export.Markdown(ctx, dir, a.notes.Notes())
	if err != nil {
		return fmt.Errorf("%s: %w", app.MsgExportFailed, err)
	}

	fmt.Fprintf(a.out, "exported %d notes to %s\n", len(paths), dir)
	return nil
}
