package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/tui"
	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		exit(nil, err, "error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.ExportRequested() {
		printBuildInfo(buildInfo)
	}

	log, err := logger.NewClientLogger("go-note-keeper", cfg.Log.Level, cfg.Log.File)
	if err != nil {
		exit(nil, err, "error creating logger")
	}
	log.Info().
		Str("version", buildInfo.Version()).
		Str("commit", buildInfo.Commit()).
		Str("driver", cfg.Storage.Driver).
		Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		exit(log, err, "create local storage")
	}
	defer storages.Close()

	notes := service.NewNoteStore(storages.Notes)

	var ui client.UI
	if !cfg.ExportRequested() {
		if ui, err = tui.New(notes, buildInfo, log); err != nil {
			exit(log, err, "error creating ui")
		}
	}

	app, err := client.NewApp(notes, ui, cfg, log)
	if err != nil {
		exit(log, err, "init client app error")
	}

	if err = app.Run(ctx); err != nil {
		storages.Close()
		exit(log, err, "client run error")
	}
}

// exit reports err on stderr, since the log file is not visible while the
// program runs, and terminates the process.
func exit(log *logger.Logger, err error, msg string) {
	if log != nil {
		log.Error().Err(err).Msg(msg)
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
