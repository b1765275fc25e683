// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	ErrNoTokens          = errors.New("at least one non-empty token must be configured")
	ErrUnknownBackend    = errors.New("unknown storage backend")
	ErrMissingDSN        = errors.New("database DSN is required for the selected storage backend")
	ErrMissingRedisAddr  = errors.New("redis address is required for the redis storage backend")
	ErrMissingDataDir    = errors.New("data directory is required for the file storage backend")
	ErrInvalidTimeout    = errors.New("timeouts and intervals must be positive")
	ErrInvalidBodySize   = errors.New("max body size must be positive")
	ErrMissingServerURL  = errors.New("server URL is required")
	ErrMissingToken      = errors.New("token is required")
	ErrMissingClientFile = errors.New("local file path is required")
)
