// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line sync client. Values come from
// CLIENT_* environment variables, overridden by command-line flags.
type ClientConfig struct {
	// URL is the server base URL, e.g. "http://localhost:8080".
	URL string `env:"URL"`
	// Token is the shared secret, sent as a bearer token.
	Token string `env:"TOKEN"`
	// File is the local document path.
	File string `env:"FILE"`
	// RequestTimeout bounds a single HTTP exchange.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// HashKey enables HMAC body signing when non-empty.
	HashKey string `env:"HASH_KEY"`
	// LogFile, when set, receives rotated JSON logs.
	LogFile string `env:"LOG_FILE"`
	// NoBackup disables the backup copy taken before a pull overwrites File.
	NoBackup bool `env:"NO_BACKUP"`
}

const clientEnvPrefix = "CLIENT_"

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		File:           "storage.json",
		RequestTimeout: 15 * time.Second,
	}
}

// GetClientConfig merges CLIENT_* environment variables with values from
// command-line flags. Non-zero flag values win. Missing fields are filled
// from defaults and the result is validated.
func GetClientConfig(flags *ClientConfig) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnvWithPrefix(cfg, clientEnvPrefix); err != nil {
		return nil, err
	}

	if flags != nil {
		if err := mergo.Merge(cfg, flags, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	if err := mergo.Merge(cfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error applying default client configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *ClientConfig) validate() error {
	if c.URL == "" {
		return ErrMissingServerURL
	}
	if c.Token == "" {
		return ErrMissingToken
	}
	if c.File == "" {
		return ErrMissingClientFile
	}
	if c.RequestTimeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}
