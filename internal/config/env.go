// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every environment variable read by the client, so
// STORAGE_DRIVER is looked up as NOTES_STORAGE_DRIVER.
const EnvPrefix = "NOTES_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types, all under [EnvPrefix].
//
// Returns a wrapped error if parsing fails (e.g. a duration that
// time.ParseDuration rejects).
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
