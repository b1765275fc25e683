// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
)

// Storages bundles the configured snapshot backend with the resources that
// must be released on shutdown.
type Storages struct {
	SnapshotStorage SnapshotStorage

	// TempSweeper is non-nil only for the file backend.
	TempSweeper TempSweeper

	closers []io.Closer
}

// NewStorages builds the backend selected by cfg.Backend. SQL backends are
// migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		fs, err := NewFileSnapshotStorage(cfg.Files.DataDir, log)
		if err != nil {
			return nil, err
		}
		return &Storages{SnapshotStorage: fs, TempSweeper: fs}, nil

	case config.BackendSQLite, config.BackendPostgres:
		var (
			db  *DB
			err error
		)
		if cfg.Backend == config.BackendSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB.DSN, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			_ = db.Close()
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			return nil, fmt.Errorf("error migrating database: %w", err)
		}

		return &Storages{
			SnapshotStorage: NewSQLSnapshotStorage(db, log),
			closers:         []io.Closer{db},
		}, nil

	case config.BackendRedis:
		client, err := NewConnectRedis(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			SnapshotStorage: NewRedisSnapshotStorage(client, log),
			closers:         []io.Closer{client},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", config.ErrUnknownBackend, cfg.Backend)
}

// Close releases every connection held by the storages.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
