// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingCredentials is logged when a request carries neither an
	// "Authorization" nor an "X-Token" header.
	ErrMissingCredentials = errors.New("no credentials in request")

	// ErrInvalidAuthorizationHeader is logged when the "Authorization" header
	// is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrBodyTooLarge is returned while reading a request body that exceeds
	// the configured maximum size.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrUnsupportedUser is returned when a legacy request names a user other
	// than "default". Every token owns exactly one document.
	ErrUnsupportedUser = errors.New("only the default user is supported")
)
