// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// FocusKeeper client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Timer holds focus timer defaults (target and break durations).
	Timer Timer `envPrefix:"TIMER_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Engine holds the status endpoint settings of the external sync engine.
	Engine Engine `envPrefix:"ENGINE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown on the welcome header.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Timer holds the focus timer defaults.
type Timer struct {
	// TargetMinutes is the default focus target duration in minutes.
	// Env: TIMER_TARGET_MINUTES
	TargetMinutes int `env:"TARGET_MINUTES"`

	// BreakMinutes is the default break duration in minutes.
	// Env: TIMER_BREAK_MINUTES
	BreakMinutes int `env:"BREAK_MINUTES"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "focuskeeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Engine holds settings for reaching the external sync engine's local status
// endpoint. The engine itself is an external collaborator; only its
// status-report interface is consumed.
type Engine struct {
	// Address is the base URL of the engine's local HTTP status endpoint
	// (e.g. "http://localhost:8337").
	// Env: ENGINE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single status request
	// (e.g. "15s").
	// Env: ENGINE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatusPollInterval defines how often the status poll job re-reads the
	// engine report when no change notification arrives (e.g. "30s").
	// Env: WORKERS_STATUS_POLL_INTERVAL
	StatusPollInterval time.Duration `env:"STATUS_POLL_INTERVAL"`
}

// GetStructuredConfig loads and merges the application configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source fails
// to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
