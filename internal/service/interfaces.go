// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/loadingkuu/LyTodo/models"
)

// AuthService maps a presented credential to the token namespace it opens.
type AuthService interface {
	// Authenticate returns the token and its derived storage key, or
	// [ErrUnauthorized].
	Authenticate(ctx context.Context, presented string) (models.Token, error)
}

// SyncService implements whole-document pull and push for one token at a
// time. The last successful push wins.
type SyncService interface {
	Pull(ctx context.Context, token models.Token) (models.PullResult, error)
	Push(ctx context.Context, token models.Token, content []byte) (models.PushResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// logging.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}
