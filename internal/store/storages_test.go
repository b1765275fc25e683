// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
)

func TestNewStorages(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		cfg         func(t *testing.T) config.Storage
		wantSweeper bool
	}{
		{
			name: "file",
			cfg: func(t *testing.T) config.Storage {
				return config.Storage{Backend: config.BackendFile, Files: config.Files{DataDir: t.TempDir()}}
			},
			wantSweeper: true,
		},
		{
			name: "sqlite",
			cfg: func(t *testing.T) config.Storage {
				return config.Storage{Backend: config.BackendSQLite, DB: config.DB{DSN: filepath.Join(t.TempDir(), "s.db")}}
			},
		},
		{
			name: "redis",
			cfg: func(t *testing.T) config.Storage {
				return config.Storage{Backend: config.BackendRedis, Redis: config.Redis{Address: miniredis.RunT(t).Addr()}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStorages(ctx, tt.cfg(t), logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, s.Close()) })

			require.NotNil(t, s.SnapshotStorage)
			assert.Equal(t, tt.wantSweeper, s.TempSweeper != nil)

			_, err = s.SnapshotStorage.Write(ctx, testKey, []byte(`{"ok":true}`))
			require.NoError(t, err)
			got, err := s.SnapshotStorage.Read(ctx, testKey)
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"ok":true}`), got.Content)
		})
	}
}

func TestNewStorages_UnknownBackend(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{Backend: "s3"}, logger.Nop())
	assert.ErrorIs(t, err, config.ErrUnknownBackend)
}
