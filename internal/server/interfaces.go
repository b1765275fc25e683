// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// Run serves requests until ctx is cancelled or the listener fails, then
	// shuts down gracefully.
	Run(ctx context.Context) error
}
