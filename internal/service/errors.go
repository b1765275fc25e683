// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUnauthorized is returned for a missing or unknown token. The two
	// cases are deliberately indistinguishable to the caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidDocument is returned by Push when the payload is empty or not
	// well-formed JSON. The stored snapshot is left untouched.
	ErrInvalidDocument = errors.New("invalid document")

	ErrNoTokensConfigured    = errors.New("no tokens configured")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
