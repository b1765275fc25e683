// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the server's business logic: token authentication,
// whole-document pull and push with per-key locking, and application info.
package service

import (
	"fmt"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/store"
	"github.com/loadingkuu/LyTodo/internal/validators"
)

type Services struct {
	AuthService    AuthService
	SyncService    SyncService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	syncService := NewSyncLoggingService().Wrap(
		NewSyncService(storages.SnapshotStorage, validators.NewDocumentValidator(), logger),
	)

	return &Services{
		AuthService:    authService,
		SyncService:    syncService,
		AppInfoService: appInfoService,
	}, nil
}
