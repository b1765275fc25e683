// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loadingkuu/LyTodo/internal/adapter"
	"github.com/loadingkuu/LyTodo/internal/config"
	handlerhttp "github.com/loadingkuu/LyTodo/internal/handler/http"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/service"
	"github.com/loadingkuu/LyTodo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, hashKey string) string {
	t.Helper()

	cfg := &config.StructuredConfig{
		App:     config.App{Tokens: []string{"alice", "bob"}, HashKey: hashKey, Version: "test"},
		Storage: config.Storage{Backend: config.BackendFile, Files: config.Files{DataDir: t.TempDir()}},
		Server:  config.Server{MaxBodySize: 1 << 20},
	}

	log := logger.Nop()
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	require.NoError(t, err)
	services, err := service.NewServices(storages, cfg.App, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, cfg, log).Init())
	t.Cleanup(srv.Close)
	return srv.URL
}

func newDevice(t *testing.T, url, token, hashKey string) (*App, string) {
	t.Helper()

	file := filepath.Join(t.TempDir(), "storage.json")
	app, err := NewApp(&config.ClientConfig{
		URL:            url,
		Token:          token,
		File:           file,
		HashKey:        hashKey,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return app, file
}

func TestSyncBetweenDevices(t *testing.T) {
	for _, hashKey := range []string{"", "shared-hmac-key"} {
		t.Run("hash key "+hashKey, func(t *testing.T) {
			url := startServer(t, hashKey)
			ctx := context.Background()

			laptop, laptopFile := newDevice(t, url, "alice", hashKey)
			phone, phoneFile := newDevice(t, url, "alice", hashKey)

			// nothing stored yet
			res, err := phone.Pull(ctx)
			require.NoError(t, err)
			assert.Equal(t, PullEmpty, res.Status)
			assert.NoFileExists(t, phoneFile)

			document := []byte(`{"version":1,"payload":{"todos":["buy milk"]}}`)
			require.NoError(t, os.WriteFile(laptopFile, document, 0o600))
			ack, err := laptop.Push(ctx)
			require.NoError(t, err)
			assert.True(t, ack.OK)

			res, err = phone.Pull(ctx)
			require.NoError(t, err)
			assert.Equal(t, PullUpdated, res.Status)
			got, err := os.ReadFile(phoneFile)
			require.NoError(t, err)
			assert.Equal(t, document, got)

			// second pull is answered with 304
			res, err = phone.Pull(ctx)
			require.NoError(t, err)
			assert.Equal(t, PullUnchanged, res.Status)
		})
	}
}

func TestSyncWrongToken(t *testing.T) {
	url := startServer(t, "")
	ctx := context.Background()

	owner, ownerFile := newDevice(t, url, "alice", "")
	require.NoError(t, os.WriteFile(ownerFile, []byte(`{"secret":true}`), 0o600))
	_, err := owner.Push(ctx)
	require.NoError(t, err)

	intruder, intruderFile := newDevice(t, url, "mallory", "")
	_, err = intruder.Pull(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.NoFileExists(t, intruderFile)

	require.NoError(t, os.WriteFile(intruderFile, []byte(`{"secret":false}`), 0o600))
	_, err = intruder.Push(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	other, otherFile := newDevice(t, url, "bob", "")
	res, err := other.Pull(ctx)
	require.NoError(t, err)
	assert.Equal(t, PullEmpty, res.Status)
	assert.NoFileExists(t, otherFile)

	_, err = owner.Pull(ctx)
	require.NoError(t, err)
	got, err := os.ReadFile(ownerFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"secret":true}`, string(got))
}

func TestSyncHashKeyMismatch(t *testing.T) {
	url := startServer(t, "server-key")
	ctx := context.Background()

	device, file := newDevice(t, url, "alice", "client-key")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o600))

	_, err := device.Push(ctx)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}
