// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// databaseURLEnv is the conventional DSN variable of hosting platforms. It is
// read only when STORAGE_DB_DATABASE_URI is unset.
const databaseURLEnv = "DATABASE_URL"

// parseEnv populates cfg from environment variables through the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = os.Getenv(databaseURLEnv)
	}

	return nil
}
