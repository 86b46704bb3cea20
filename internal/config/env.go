// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variable names are the section
// prefix plus the field tag, e.g. APP_TOKEN_SIGN_KEY, APP_ARGON_MEMORY,
// STORAGE_DB_DATABASE_URI, STORAGE_REDIS_ADDRESS, SERVER_SHUTDOWN_TIMEOUT.
// Unset variables leave their fields zero so later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
