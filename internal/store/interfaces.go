// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/loadingkuu/LyTodo/models"
)

// SnapshotStorage persists at most one document snapshot per storage key.
//
// Implementations must make Write atomic: a concurrent or subsequent Read
// observes either the previous snapshot or the new one, never a mix, and a
// failed Write leaves the previous snapshot readable.
type SnapshotStorage interface {
	// Read returns the last committed snapshot for key, or
	// [ErrSnapshotNotFound] if none exists.
	Read(ctx context.Context, key string) (models.Snapshot, error)

	// Write replaces the snapshot for key with content and returns the
	// committed snapshot.
	Write(ctx context.Context, key string, content []byte) (models.Snapshot, error)
}

// TempSweeper removes temporary files orphaned by an interrupted write.
// Only the file storage implements it.
type TempSweeper interface {
	SweepStaleTemp(ctx context.Context, olderThan time.Duration) (int, error)
}

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_storage_mock.go -package=mock
