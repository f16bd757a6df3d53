// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage drivers understood by the client storage layer.
const (
	// DriverSQLite keeps the notes blob in a local SQLite key-value table.
	DriverSQLite = "sqlite"
	// DriverFile keeps the notes blob in a single JSON file.
	DriverFile = "file"
	// DriverMemory keeps the notes blob in process memory only.
	DriverMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper application. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage selects and configures the persistence backend for notes.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log controls the client log file and level.
	Log Log `envPrefix:"LOG_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Export holds settings of the one-shot markdown export mode.
	Export Export `envPrefix:"EXPORT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Driver is one of [DriverSQLite], [DriverFile] or [DriverMemory].
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Key is the storage key the notes collection is written under.
	// Env: STORAGE_KEY
	Key string `env:"KEY"`

	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`

	// File holds the JSON file backend settings.
	File File `envPrefix:"FILE_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "notes.db" or "file:notes.db?_journal_mode=WAL").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// File holds settings of the JSON file backend.
type File struct {
	// Path is the file the notes blob is written to.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the path of the client log file. Empty means next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// FlushInterval is how often the flush job retries a failed write.
	// Env: WORKERS_FLUSH_INTERVAL
	FlushInterval time.Duration `env:"FLUSH_INTERVAL"`
}

// Export holds settings of the markdown export mode.
type Export struct {
	// Dir is the target directory. When set, the client exports all notes
	// there and exits without starting the UI.
	// Env: EXPORT_DIR
	Dir string `env:"DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args, without the program name)
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Driver: DriverSQLite,
			Key:    "notes",
			DB:     DB{DSN: "notes.db"},
			File:   File{Path: "notes.json"},
		},
		Log: Log{
			Level: "info",
		},
		Workers: Workers{
			FlushInterval: 30 * time.Second,
		},
	}
}
