// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientFile contains the JSON file backend settings for the client.
type ClientFile struct {
	// Path is the notes file location.
	Path string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver selects the backend: sqlite, file or memory.
	Driver string
	// Key is the storage key of the notes collection.
	Key string
	// DB holds local database settings.
	DB ClientDB
	// File holds JSON file settings.
	File ClientFile
}

// ClientLog contains logger settings.
type ClientLog struct {
	Level string
	File  string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// FlushInterval defines how often a failed write is retried.
	FlushInterval time.Duration
}

// ClientExport contains the export mode settings.
type ClientExport struct {
	Dir string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Storage contains client storage settings.
	Storage ClientStorage
	// Log contains logger settings.
	Log ClientLog
	// Workers contains background job settings.
	Workers ClientWorkers
	// Export contains export mode settings.
	Export ClientExport
}

// ExportRequested reports whether the client should run an export instead
// of the interactive UI.
func (c *ClientConfig) ExportRequested() bool {
	return c.Export.Dir != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Storage: ClientStorage{
			Driver: cfg.Storage.Driver,
			Key:    cfg.Storage.Key,
			DB:     ClientDB{DSN: cfg.Storage.DB.DSN},
			File:   ClientFile{Path: cfg.Storage.File.Path},
		},
		Log: ClientLog{
			Level: cfg.Log.Level,
			File:  cfg.Log.File,
		},
		Workers: ClientWorkers{FlushInterval: cfg.Workers.FlushInterval},
		Export:  ClientExport{Dir: cfg.Export.Dir},
	}
}
