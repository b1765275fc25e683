// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/store"
	"github.com/loadingkuu/LyTodo/internal/utils"
	"github.com/loadingkuu/LyTodo/internal/validators"
	"github.com/loadingkuu/LyTodo/models"
)

// syncService is the concrete implementation of SyncService.
//
// Pushes on one storage key are serialized with each other and with pulls on
// that key; pulls share the key. Different keys never wait on each other.
// Nothing is cached between requests: every pull reads the storage.
type syncService struct {
	storage   store.SnapshotStorage
	validator validators.Validator
	locks     *keyedLocker
	logger    *logger.Logger
}

// NewSyncService constructs a SyncService over storage. validator checks
// pushed payloads before the storage is touched.
func NewSyncService(storage store.SnapshotStorage, validator validators.Validator, logger *logger.Logger) SyncService {
	return &syncService{
		storage:   storage,
		validator: validator,
		locks:     newKeyedLocker(),
		logger:    logger,
	}
}

// Pull returns the current snapshot for token. When nothing has been pushed
// yet the result carries [models.EmptyDocument] with Empty set.
func (s *syncService) Pull(ctx context.Context, token models.Token) (models.PullResult, error) {
	unlock := s.locks.RLock(token.Key)
	defer unlock()

	snapshot, err := s.storage.Read(ctx, token.Key)
	if err != nil {
		if errors.Is(err, store.ErrSnapshotNotFound) {
			content := append([]byte(nil), models.EmptyDocument...)
			return models.PullResult{
				Content: content,
				ETag:    utils.ContentHash(content),
				Length:  len(content),
				Empty:   true,
			}, nil
		}
		return models.PullResult{}, fmt.Errorf("error reading snapshot: %w", err)
	}

	return models.PullResult{
		Content:   snapshot.Content,
		ETag:      utils.ContentHash(snapshot.Content),
		Length:    len(snapshot.Content),
		UpdatedAt: snapshot.UpdatedAt,
	}, nil
}

// Push replaces the snapshot for token with content. Invalid content is
// rejected with [ErrInvalidDocument] before any lock is taken.
func (s *syncService) Push(ctx context.Context, token models.Token, content []byte) (models.PushResult, error) {
	if err := s.validator.Validate(ctx, content); err != nil {
		return models.PushResult{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	unlock := s.locks.Lock(token.Key)
	defer unlock()

	snapshot, err := s.storage.Write(ctx, token.Key, content)
	if err != nil {
		return models.PushResult{}, fmt.Errorf("error writing snapshot: %w", err)
	}

	return models.PushResult{
		ETag:      utils.ContentHash(snapshot.Content),
		Length:    len(snapshot.Content),
		UpdatedAt: snapshot.UpdatedAt,
	}, nil
}
