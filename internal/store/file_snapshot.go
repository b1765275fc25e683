// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/utils"
	"github.com/loadingkuu/LyTodo/models"
)

const (
	snapshotFileExt  = ".json"
	snapshotFileMode = 0o600
	dataDirMode      = 0o700
)

// FileSnapshotStorage keeps one snapshot per key as <dir>/<key>.json.
//
// Writes go through [utils.WriteFileAtomic]: the new content is written to a
// temporary file in the same directory and renamed over the target. Reads
// open the target once and read from that descriptor, so a reader always sees
// a complete file even while a rename swaps it.
type FileSnapshotStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileSnapshotStorage creates dir if needed and returns a storage rooted
// at it.
func NewFileSnapshotStorage(dir string, log *logger.Logger) (*FileSnapshotStorage, error) {
	if err := os.MkdirAll(dir, dataDirMode); err != nil {
		log.Err(err).Str("func", "NewFileSnapshotStorage").Str("dir", dir).Msg("error creating data directory")
		return nil, fmt.Errorf("%w: create data directory: %w", ErrStorageIO, err)
	}

	log.Debug().Str("func", "NewFileSnapshotStorage").Str("dir", dir).Msg("file snapshot storage ready")
	return &FileSnapshotStorage{dir: dir, logger: log}, nil
}

func (s *FileSnapshotStorage) path(key string) string {
	return filepath.Join(s.dir, key+snapshotFileExt)
}

// Read returns the snapshot stored under key. The file's modification time
// is reported as UpdatedAt.
func (s *FileSnapshotStorage) Read(ctx context.Context, key string) (models.Snapshot, error) {
	if err := ValidateKey(key); err != nil {
		return models.Snapshot{}, err
	}

	log := logger.FromContext(ctx)

	f, err := os.Open(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		log.Err(err).Str("func", "*FileSnapshotStorage.Read").Msg("error opening snapshot file")
		return models.Snapshot{}, fmt.Errorf("%w: open snapshot: %w", ErrStorageIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		log.Err(err).Str("func", "*FileSnapshotStorage.Read").Msg("error reading snapshot file info")
		return models.Snapshot{}, fmt.Errorf("%w: stat snapshot: %w", ErrStorageIO, err)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		log.Err(err).Str("func", "*FileSnapshotStorage.Read").Msg("error reading snapshot file")
		return models.Snapshot{}, fmt.Errorf("%w: read snapshot: %w", ErrStorageIO, err)
	}

	return models.Snapshot{Content: content, UpdatedAt: info.ModTime().UTC()}, nil
}

// Write atomically replaces the snapshot stored under key.
func (s *FileSnapshotStorage) Write(ctx context.Context, key string, content []byte) (models.Snapshot, error) {
	if err := ValidateKey(key); err != nil {
		return models.Snapshot{}, err
	}

	log := logger.FromContext(ctx)
	path := s.path(key)

	if err := utils.WriteFileAtomic(path, content, snapshotFileMode); err != nil {
		log.Err(err).Str("func", "*FileSnapshotStorage.Write").Msg("error replacing snapshot file")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrStorageIO, err)
	}

	updatedAt := time.Now().UTC()
	if info, err := os.Stat(path); err == nil {
		updatedAt = info.ModTime().UTC()
	}

	log.Debug().Str("func", "*FileSnapshotStorage.Write").Int("length", len(content)).Msg("snapshot written")
	return models.Snapshot{Content: content, UpdatedAt: updatedAt}, nil
}

// SweepStaleTemp removes temporary files in the data directory whose
// modification time is older than olderThan and returns how many were
// removed. Younger temporary files may belong to a write in progress and are
// left alone.
func (s *FileSnapshotStorage) SweepStaleTemp(ctx context.Context, olderThan time.Duration) (int, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("%w: list data directory: %w", ErrStorageIO, err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() || !utils.IsTempFile(entry.Name(), snapshotFileExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Err(err).Str("func", "*FileSnapshotStorage.SweepStaleTemp").Str("file", entry.Name()).Msg("error removing stale temp file")
			continue
		}
		removed++
	}

	return removed, nil
}
