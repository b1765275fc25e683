// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PullResult is what the sync service hands to the transport layer for a
// pull. When Empty is true, Content is [EmptyDocument] and UpdatedAt is zero.
type PullResult struct {
	Content   []byte
	ETag      string
	Length    int
	UpdatedAt time.Time
	Empty     bool
}

// PushResult acknowledges a committed push.
type PushResult struct {
	ETag      string
	Length    int
	UpdatedAt time.Time
}
