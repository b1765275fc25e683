// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")

	// ErrTransport wraps failures to reach the server at all: DNS, refused
	// connections, timeouts.
	ErrTransport = errors.New("transport error")

	// ErrIntegrity is returned when a response does not match its ETag or
	// HashSHA256 header.
	ErrIntegrity = errors.New("integrity check failed")

	ErrInvalidServerURL = errors.New("invalid server url")
)
