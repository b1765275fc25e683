// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command lytodo-server serves one JSON todo document per access token over
// HTTP.
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/handler"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/server"
	"github.com/loadingkuu/LyTodo/internal/service"
	"github.com/loadingkuu/LyTodo/internal/store"
	"github.com/loadingkuu/LyTodo/internal/workers"
	"github.com/loadingkuu/LyTodo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("lytodo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("backend", cfg.Storage.Backend).
		Int("tokens", len(cfg.App.Tokens)).
		Bool("hmac", cfg.App.HashKey != "").
		Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bgWorkers := workers.NewWorkers(storages, cfg.Workers, log)
	workersDone := make(chan struct{})
	go func() {
		bgWorkers.Run(ctx)
		close(workersDone)
	}()

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
		stop()
	}
	<-workersDone
}
