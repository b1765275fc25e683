// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (c *StructuredConfig) validate() error {
	if !hasToken(c.App.Tokens) {
		return ErrNoTokens
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.Files.DataDir == "" {
			return ErrMissingDataDir
		}
	case BackendSQLite, BackendPostgres:
		if c.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s", ErrMissingDSN, c.Storage.Backend)
		}
	case BackendRedis:
		if c.Storage.Redis.Address == "" {
			return ErrMissingRedisAddr
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}

	if c.Server.RequestTimeout <= 0 || c.Workers.SweepInterval <= 0 || c.Workers.TempMaxAge <= 0 {
		return ErrInvalidTimeout
	}

	if c.Server.MaxBodySize <= 0 {
		return ErrInvalidBodySize
	}

	return nil
}

func hasToken(tokens []string) bool {
	for _, t := range tokens {
		if strings.TrimSpace(t) != "" {
			return true
		}
	}
	return false
}
