// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PushResponse is the JSON body returned by the server after a successful
// push. The client prints ETag and UpdatedAt so the user can tell which
// snapshot is now current on the server.
type PushResponse struct {
	// OK is always true on a 2xx response. Older clients check it instead
	// of the status code.
	OK bool `json:"ok"`

	// ETag is the hex SHA-256 of the stored document.
	ETag string `json:"etag"`

	// Length is the size of the stored document in bytes.
	Length int `json:"length"`

	// UpdatedAt is the new last-modified timestamp of the snapshot.
	UpdatedAt time.Time `json:"updated_at"`
}

// PulledDocument is the client-side view of a pull response.
type PulledDocument struct {
	// Content is the raw document body. Nil when NotModified is true.
	Content []byte

	// ETag is the server-reported content hash (quotes stripped).
	ETag string

	// UpdatedAt is parsed from the Last-Modified header; zero if absent.
	UpdatedAt time.Time

	// Empty reports that the server has no snapshot for the token and
	// returned the [EmptyDocument] sentinel.
	Empty bool

	// NotModified reports a 304 answer to a conditional pull.
	NotModified bool
}
