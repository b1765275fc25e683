// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage backend identifiers accepted by [Storage.Backend].
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// StructuredConfig is the top-level configuration container for the sync
// server. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the shared secret(s), the integrity hash key and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the snapshot storage backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and request size settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background maintenance jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Tokens lists the accepted bearer secrets. Each token is its own
	// document namespace. A single token is the usual deployment.
	// Env: APP_TOKENS (comma-separated)
	Tokens []string `env:"TOKENS" envSeparator:","`

	// HashKey, when set, enables HMAC-SHA256 body signing: pushes must carry
	// a matching HashSHA256 header and pulls are answered with one.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodySize is the largest accepted push body in bytes.
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`
}

// Storage groups the configuration for all snapshot storage backends. Only
// the section matching Backend is used.
type Storage struct {
	// Backend is one of "file", "sqlite", "postgres" or "redis".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Files configures the file backend.
	Files Files `envPrefix:"FILES_"`

	// DB configures the sqlite and postgres backends.
	DB DB `envPrefix:"DB_"`

	// Redis configures the redis backend.
	Redis Redis `envPrefix:"REDIS_"`
}

// Files holds file-system settings for the file backend.
type Files struct {
	// DataDir is the directory holding one snapshot file per token.
	// Env: STORAGE_FILES_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// DB holds connection settings for the SQL backends.
type DB struct {
	// DSN is a PostgreSQL connection string for the postgres backend, or a
	// database file path for the sqlite backend.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Redis holds connection settings for the redis backend.
type Redis struct {
	// Env: STORAGE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: STORAGE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: STORAGE_REDIS_DB
	DB int `env:"DB"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often the file backend is scanned for temporary
	// files orphaned by an interrupted write.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// TempMaxAge is how old an orphaned temporary file must be before it is
	// removed.
	// Env: WORKERS_TEMP_MAX_AGE
	TempMaxAge time.Duration `env:"TEMP_MAX_AGE"`
}

// defaultStructuredConfig holds the values used for fields that no source
// has set.
func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: "dev",
		},
		Storage: Storage{
			Backend: BackendFile,
			Files: Files{
				DataDir: "./lytodo_data",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
			MaxBodySize:    8 << 20,
		},
		Workers: Workers{
			SweepInterval: 10 * time.Minute,
			TempMaxAge:    time.Hour,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
