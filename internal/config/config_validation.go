// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Client-specific rules live on [ClientConfig.validate]; the structured view
// only rejects values no consumer could use.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.FlushInterval < 0 {
		return fmt.Errorf("%w: negative flush interval %s", ErrInvalidWorkerConfigs, cfg.Workers.FlushInterval)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Key == "" {
		return fmt.Errorf("%w: empty storage key", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: sqlite driver needs a DSN", ErrInvalidStorageConfigs)
		}
	case DriverFile:
		if cfg.Storage.File.Path == "" {
			return fmt.Errorf("%w: file driver needs a path", ErrInvalidStorageConfigs)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Workers.FlushInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
