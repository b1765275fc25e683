// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command lytodo-client synchronises a local todo document with a LyTodo
// sync server.
//
//	lytodo-client pull --url http://localhost:8080 --token $TOKEN
//	lytodo-client push --file ./storage.json
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/loadingkuu/LyTodo/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(buildInfo)
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		printError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
