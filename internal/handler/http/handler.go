// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/service"
	"github.com/loadingkuu/LyTodo/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher is nil when no hash key is configured.
	hasher      *utils.Hasher
	maxBodySize int64
	traceIDs    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:    services,
		maxBodySize: cfg.Server.MaxBodySize,
		traceIDs:    utils.NewUUIDGenerator(),
		logger:      logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Bool("hmac", h.hasher != nil).Int64("max_body_size", h.maxBodySize).Msg("http handler created")
	return h
}
