// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EmptyDocument is returned by pull when nothing has been pushed for a token
// yet. A brand-new client can bootstrap from it instead of handling an error.
var EmptyDocument = []byte(`{"version":0,"payload":null}`)

// Snapshot is the persisted representation of one token's document.
//
// Content is stored and returned byte-for-byte; the server never re-encodes
// it. UpdatedAt is taken from the storage layer after a successful write and
// is used for diagnostics only, never for conflict resolution.
type Snapshot struct {
	// Content holds the raw JSON document bytes.
	Content []byte

	// UpdatedAt is the last-modified time reported by the storage backend.
	UpdatedAt time.Time
}
