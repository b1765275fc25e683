// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/models"
)

const (
	snapshotsTable     = "snapshots"
	columnStorageKey   = "storage_key"
	columnContent      = "content"
	columnUpdatedAt    = "updated_at"
	upsertSnapshotTail = "ON CONFLICT(storage_key) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at"
)

// sqlSnapshotStorage is the SQL-backed implementation of [SnapshotStorage]
// shared by the sqlite and postgres backends. The replace is a single upsert
// statement, so it is atomic in both engines.
type sqlSnapshotStorage struct {
	db      *DB
	builder squirrel.StatementBuilderType
	logger  *logger.Logger
}

// NewSQLSnapshotStorage constructs a [SnapshotStorage] over db. The schema
// must already be migrated.
func NewSQLSnapshotStorage(db *DB, log *logger.Logger) SnapshotStorage {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql snapshot storage")
	return &sqlSnapshotStorage{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(db.placeholder),
		logger:  log,
	}
}

func (s *sqlSnapshotStorage) Read(ctx context.Context, key string) (models.Snapshot, error) {
	if err := ValidateKey(key); err != nil {
		return models.Snapshot{}, err
	}

	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select(columnContent, columnUpdatedAt).
		From(snapshotsTable).
		Where(squirrel.Eq{columnStorageKey: key}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Read").Msg("error building select query")
		return models.Snapshot{}, fmt.Errorf("%w: %w: %w", ErrStorageIO, ErrBuildingSQLQuery, err)
	}

	var (
		content   []byte
		updatedAt int64
	)
	row := s.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Read").
			Stringer("classification", s.classify(err)).
			Msg("error executing select query")
		return models.Snapshot{}, fmt.Errorf("%w: %w: %w", ErrStorageIO, ErrExecutingQuery, err)
	}
	if err = row.Scan(&content, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Snapshot{}, ErrSnapshotNotFound
		}
		log.Err(err).Str("func", "*sqlSnapshotStorage.Read").Msg("error scanning snapshot row")
		return models.Snapshot{}, fmt.Errorf("%w: %w: %w", ErrStorageIO, ErrScanningRow, err)
	}

	return models.Snapshot{Content: content, UpdatedAt: time.Unix(0, updatedAt).UTC()}, nil
}

func (s *sqlSnapshotStorage) Write(ctx context.Context, key string, content []byte) (models.Snapshot, error) {
	if err := ValidateKey(key); err != nil {
		return models.Snapshot{}, err
	}

	log := logger.FromContext(ctx)
	now := time.Now().UTC()

	query, args, err := s.builder.
		Insert(snapshotsTable).
		Columns(columnStorageKey, columnContent, columnUpdatedAt).
		Values(key, content, now.UnixNano()).
		Suffix(upsertSnapshotTail).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Write").Msg("error building upsert query")
		return models.Snapshot{}, fmt.Errorf("%w: %w: %w", ErrStorageIO, ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sqlSnapshotStorage.Write").
			Stringer("classification", s.classify(err)).
			Msg("error upserting snapshot")
		return models.Snapshot{}, fmt.Errorf("%w: %w: %w", ErrStorageIO, ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*sqlSnapshotStorage.Write").Int("length", len(content)).Msg("snapshot written")
	return models.Snapshot{Content: content, UpdatedAt: now}, nil
}

func (s *sqlSnapshotStorage) classify(err error) ErrorClassification {
	if s.db.errorClassificator == nil {
		return NonRetryable
	}
	return s.db.errorClassificator.Classify(err)
}
