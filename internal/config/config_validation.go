// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [ClientConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Engine.Address == "" || cfg.Engine.RequestTimeout == 0 {
		return ErrInvalidEngineConfigs
	}

	if cfg.Workers.StatusPollInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Timer.TargetMinutes < 0 || cfg.Timer.BreakMinutes < 0 {
		return ErrInvalidTimerConfigs
	}

	return nil
}
