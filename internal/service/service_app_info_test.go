// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/store"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr error
	}{
		{name: "semver", version: "1.0.0"},
		{name: "build metadata", version: "v1.2.3-beta+build.42"},
		{name: "empty", version: "", wantErr: ErrVersionIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.version}, logger.Nop())
			if tt.wantErr != nil {
				assert.Nil(t, svc)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestNewServices(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{
		Backend: config.BackendFile,
		Files:   config.Files{DataDir: filepath.Join(t.TempDir(), "data")},
	}, logger.Nop())
	require.NoError(t, err)

	t.Run("wires every service", func(t *testing.T) {
		services, err := NewServices(storages, config.App{Tokens: []string{"abc"}, Version: "dev"}, logger.Nop())
		require.NoError(t, err)
		assert.NotNil(t, services.AuthService)
		assert.NotNil(t, services.SyncService)
		assert.NotNil(t, services.AppInfoService)

		token, err := services.AuthService.Authenticate(context.Background(), "abc")
		require.NoError(t, err)
		res, err := services.SyncService.Pull(context.Background(), token)
		require.NoError(t, err)
		assert.True(t, res.Empty)
	})

	t.Run("no tokens", func(t *testing.T) {
		_, err := NewServices(storages, config.App{Version: "dev"}, logger.Nop())
		assert.ErrorIs(t, err, ErrNoTokensConfigured)
	})

	t.Run("no version", func(t *testing.T) {
		_, err := NewServices(storages, config.App{Tokens: []string{"abc"}}, logger.Nop())
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
	})
}
