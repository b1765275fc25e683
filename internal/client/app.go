// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/loadingkuu/LyTodo/internal/adapter"
	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/utils"
	"github.com/loadingkuu/LyTodo/internal/validators"
	"github.com/loadingkuu/LyTodo/models"
)

const (
	localFileMode = 0o600

	backupTimeLayout  = "20060102_150405"
	maxBackupAttempts = 1000
)

// PullStatus describes what a pull did to the local file.
type PullStatus int

const (
	// PullUpdated means the local file was replaced with the server copy.
	PullUpdated PullStatus = iota
	// PullUnchanged means the local file already matched the server.
	PullUnchanged
	// PullEmpty means the server holds no document yet; the local file was
	// left alone.
	PullEmpty
)

func (s PullStatus) String() string {
	switch s {
	case PullUpdated:
		return "updated"
	case PullUnchanged:
		return "unchanged"
	case PullEmpty:
		return "empty"
	}
	return fmt.Sprintf("PullStatus(%d)", int(s))
}

// PullResult reports the outcome of [App.Pull].
type PullResult struct {
	Status PullStatus
	ETag   string
	Length int

	// UpdatedAt is the server's last-modified time, zero if unknown.
	UpdatedAt time.Time

	// BackupPath is the copy of the previous local file, empty when no
	// backup was taken.
	BackupPath string
}

type App struct {
	server    adapter.ServerAdapter
	validator validators.Validator

	file     string
	noBackup bool

	now    func() time.Time
	logger *logger.Logger
}

// NewApp builds a client talking to the server described by cfg over HTTP.
func NewApp(cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	server, err := adapter.NewHTTPServerAdapter(*cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	return NewAppWithAdapter(server, cfg, logger), nil
}

func NewAppWithAdapter(server adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) *App {
	return &App{
		server:    server,
		validator: validators.NewDocumentValidator(),
		file:      cfg.File,
		noBackup:  cfg.NoBackup,
		now:       time.Now,
		logger:    logger,
	}
}

// Pull replaces the local file with the server's document.
//
// The SHA-256 of the current local file is sent as If-None-Match, so an
// unchanged document is not transferred again. When the server has nothing
// stored the local file is kept as is.
func (a *App) Pull(ctx context.Context) (PullResult, error) {
	local, exists, err := a.readLocal()
	if err != nil {
		return PullResult{}, err
	}

	var localHash string
	if exists {
		localHash = utils.ContentHash(local)
	}

	doc, err := a.server.Pull(ctx, localHash)
	if err != nil {
		return PullResult{}, fmt.Errorf("pull: %w", err)
	}

	result := PullResult{ETag: doc.ETag, Length: len(doc.Content), UpdatedAt: doc.UpdatedAt}

	switch {
	case doc.NotModified:
		result.Status = PullUnchanged
		result.Length = len(local)
		a.logger.Info().Str("func", "*App.Pull").Str("etag", doc.ETag).Msg("local document is current")
		return result, nil
	case doc.Empty:
		result.Status = PullEmpty
		a.logger.Info().Str("func", "*App.Pull").Msg("server has no document yet, local file kept")
		return result, nil
	case exists && localHash == doc.ETag:
		result.Status = PullUnchanged
		return result, nil
	}

	if exists && !a.noBackup {
		result.BackupPath, err = a.backupPath()
		if err != nil {
			return PullResult{}, fmt.Errorf("backup local document: %w", err)
		}
		if err = utils.WriteFileAtomic(result.BackupPath, local, localFileMode); err != nil {
			a.logger.Err(err).Str("func", "*App.Pull").Str("backup", result.BackupPath).Msg("backup failed")
			return PullResult{}, fmt.Errorf("backup local document: %w", err)
		}
	}

	if err = utils.WriteFileAtomic(a.file, doc.Content, localFileMode); err != nil {
		a.logger.Err(err).Str("func", "*App.Pull").Str("file", a.file).Msg("write failed")
		return PullResult{}, fmt.Errorf("write local document: %w", err)
	}

	result.Status = PullUpdated
	a.logger.Info().Str("func", "*App.Pull").
		Str("etag", doc.ETag).
		Int("length", result.Length).
		Str("backup", result.BackupPath).
		Msg("local document replaced")

	return result, nil
}

// Push sends the local file as the new server document. The file is checked
// locally first and is never modified.
func (a *App) Push(ctx context.Context) (models.PushResponse, error) {
	local, exists, err := a.readLocal()
	if err != nil {
		return models.PushResponse{}, err
	}
	if !exists {
		return models.PushResponse{}, fmt.Errorf("%w: %s", ErrLocalDocumentMissing, a.file)
	}

	if err = a.validator.Validate(ctx, local); err != nil {
		return models.PushResponse{}, fmt.Errorf("%w: %w", ErrLocalDocumentInvalid, err)
	}

	ack, err := a.server.Push(ctx, local)
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push: %w", err)
	}

	a.logger.Info().Str("func", "*App.Push").
		Str("etag", ack.ETag).
		Int("length", ack.Length).
		Msg("local document pushed")

	return ack, nil
}

// backupPath returns "<file>.bak_YYYYMMDD_HHMMSS" for the current time. When
// that name is already taken by an earlier backup from the same second a
// numeric suffix is added, so no backup ever overwrites another.
func (a *App) backupPath() (string, error) {
	base := a.file + ".bak_" + a.now().Format(backupTimeLayout)

	candidate := base
	for i := 1; i <= maxBackupAttempts; i++ {
		_, err := os.Lstat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("check backup path: %w", err)
		}
		candidate = base + "_" + strconv.Itoa(i)
	}

	return "", fmt.Errorf("no free backup name for %s", base)
}

func (a *App) readLocal() ([]byte, bool, error) {
	data, err := os.ReadFile(a.file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read local document: %w", err)
	}
	return data, true, nil
}
