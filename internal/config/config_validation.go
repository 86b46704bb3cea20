// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	minTokenSignKeyLength = 32
	minTokenDuration      = time.Minute
	maxTokenDuration      = 24 * time.Hour
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if len(cfg.App.TokenSignKey) < minTokenSignKeyLength {
		return fmt.Errorf("%w: token sign key must be at least %d bytes", ErrInvalidAppConfigs, minTokenSignKeyLength)
	}

	if cfg.App.TokenDuration < minTokenDuration || cfg.App.TokenDuration > maxTokenDuration {
		return fmt.Errorf("%w: token duration %s is out of range [%s, %s]",
			ErrInvalidAppConfigs, cfg.App.TokenDuration, minTokenDuration, maxTokenDuration)
	}

	if cfg.App.Argon.Time == 0 || cfg.App.Argon.Memory == 0 || cfg.App.Argon.Threads == 0 || cfg.App.Argon.KeyLength == 0 {
		return fmt.Errorf("%w: argon2 parameters must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
