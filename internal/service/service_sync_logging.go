// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/models"
)

// SyncLoggingService records the outcome and duration of every pull and
// push using the request-scoped logger. Only the storage key is logged,
// never the token or the document.
type SyncLoggingService struct {
	inner SyncService
}

func NewSyncLoggingService() SyncServiceWrapper {
	return &SyncLoggingService{}
}

func (l *SyncLoggingService) Wrap(inner SyncService) SyncService {
	return &SyncLoggingService{inner: inner}
}

func (l *SyncLoggingService) Pull(ctx context.Context, token models.Token) (models.PullResult, error) {
	start := time.Now()
	result, err := l.inner.Pull(ctx, token)

	log := logger.FromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*SyncLoggingService.Pull").Stringer("key", token).Msg("pull failed")
		return result, err
	}

	log.Info().Str("func", "*SyncLoggingService.Pull").
		Stringer("key", token).
		Int("length", result.Length).
		Bool("empty", result.Empty).
		Dur("duration", time.Since(start)).
		Msg("pull served")
	return result, nil
}

func (l *SyncLoggingService) Push(ctx context.Context, token models.Token, content []byte) (models.PushResult, error) {
	start := time.Now()
	result, err := l.inner.Push(ctx, token, content)

	log := logger.FromContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "*SyncLoggingService.Push").Stringer("key", token).Int("length", len(content)).Msg("push failed")
		return result, err
	}

	log.Info().Str("func", "*SyncLoggingService.Push").
		Stringer("key", token).
		Int("length", result.Length).
		Str("etag", result.ETag).
		Dur("duration", time.Since(start)).
		Msg("push committed")
	return result, nil
}
