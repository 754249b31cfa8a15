// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a .env file and environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote selects and configures the remote store the collections are
	// mirrored to.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds the local (on-device) persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the debounce and retry parameters of every collection sync.
	Sync Sync `envPrefix:"SYNC_"`

	// Server holds the local API listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote describes the remote store. When DSN is set the client talks to
// Postgres directly; otherwise URL must point at a PostgREST-compatible API.
type Remote struct {
	// URL is the base URL of the PostgREST-compatible endpoint.
	// Env: REMOTE_URL
	URL string `env:"URL"`

	// APIKey is sent as both the apikey header and the bearer token.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// DSN is a PostgreSQL connection string for direct access.
	// Env: REMOTE_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// RequestTimeout bounds a single remote call.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the maximum number of remote requests per second. Zero
	// disables throttling.
	// Env: REMOTE_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the token bucket size used together with RateLimit.
	// Env: REMOTE_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups the configuration for local storage.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync holds the parameters shared by all collection syncs.
type Sync struct {
	// DebounceDelay is the quiet period after the last local change before a
	// collection is written to the remote store.
	// Env: SYNC_DEBOUNCE_DELAY
	DebounceDelay time.Duration `env:"DEBOUNCE_DELAY"`

	// MaxAttempts is the number of remote write attempts per sync cycle.
	// Env: SYNC_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// RetryBaseDelay is the wait after the first failed attempt; it doubles
	// with every further attempt.
	// Env: SYNC_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
}

// Server holds the local API listener settings.
type Server struct {
	// HTTPAddress is the TCP address of the local API in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown, including flushing pending
	// syncs.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ResyncInterval is how often every collection is re-dispatched to the
	// sync layer regardless of local changes.
	// Env: WORKERS_RESYNC_INTERVAL
	ResyncInterval time.Duration `env:"RESYNC_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// File is the path of the rotated client log file.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
