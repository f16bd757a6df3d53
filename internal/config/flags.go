package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args (program name
// excluded) into a partial [StructuredConfig]. Unset flags leave their
// fields at the zero value, so they do not override other sources.
//
// Flags:
//
//	-driver storage driver: sqlite, file or memory
//	-d SQLite DSN
//	-f JSON file storage path
//	-key storage key of the notes collection
//	-log-level log level (debug, info, warn, error)
//	-log-file log file path
//	-flush-interval interval between retries of a failed write (e.g. "30s")
//	-export directory to export notes as markdown into, then exit
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var driver, dsn, filePath, key string
	var logLevel, logFile string
	var flushInterval time.Duration
	var exportDir string
	var jsonConfigPath string

	fs := flag.NewFlagSet("notes", flag.ContinueOnError)
	fs.StringVar(&driver, "driver", "", "Storage driver: sqlite, file or memory")
	fs.StringVar(&dsn, "d", "", "SQLite DSN")
	fs.StringVar(&filePath, "f", "", "JSON file storage path")
	fs.StringVar(&key, "key", "", "Storage key of the notes collection")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.DurationVar(&flushInterval, "flush-interval", 0, "Retry interval of failed writes (e.g., 30s, 1m)")
	fs.StringVar(&exportDir, "export", "", "Export notes as markdown into this directory and exit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			Driver: driver,
			Key:    key,
			DB:     DB{DSN: dsn},
			File:   File{Path: filePath},
		},
		Log: Log{
			Level: logLevel,
			File:  logFile,
		},
		Workers: Workers{
			FlushInterval: flushInterval,
		},
		Export: Export{
			Dir: exportDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
