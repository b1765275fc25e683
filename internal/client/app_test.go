// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/loadingkuu/LyTodo/internal/adapter"
	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/mock"
	"github.com/loadingkuu/LyTodo/internal/utils"
	"github.com/loadingkuu/LyTodo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 17, 9, 5, 7, 0, time.UTC)

func newTestApp(t *testing.T, noBackup bool) (*App, *mock.MockServerAdapter, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	server := mock.NewMockServerAdapter(ctrl)
	file := filepath.Join(t.TempDir(), "storage.json")

	app := NewAppWithAdapter(server, &config.ClientConfig{File: file, NoBackup: noBackup}, logger.Nop())
	app.now = func() time.Time { return fixedNow }
	return app, server, file
}

func backups(t *testing.T, file string) []string {
	t.Helper()
	matches, err := filepath.Glob(file + ".bak_*")
	require.NoError(t, err)
	return matches
}

func TestPull_NoLocalFile(t *testing.T) {
	app, server, file := newTestApp(t, false)
	remote := []byte(`{"version":2,"payload":["a"]}`)

	server.EXPECT().Pull(gomock.Any(), "").Return(models.PulledDocument{
		Content: remote,
		ETag:    utils.ContentHash(remote),
	}, nil)

	res, err := app.Pull(context.Background())

	require.NoError(t, err)
	assert.Equal(t, PullUpdated, res.Status)
	assert.Empty(t, res.BackupPath)
	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, remote, got)
	assert.Empty(t, backups(t, file))
}

func TestPull_ReplacesAndBacksUp(t *testing.T) {
	app, server, file := newTestApp(t, false)
	local := []byte(`{"version":1}`)
	remote := []byte(`{"version":2}`)
	require.NoError(t, os.WriteFile(file, local, 0o600))

	server.EXPECT().Pull(gomock.Any(), utils.ContentHash(local)).Return(models.PulledDocument{
		Content: remote,
		ETag:    utils.ContentHash(remote),
	}, nil)

	res, err := app.Pull(context.Background())

	require.NoError(t, err)
	assert.Equal(t, PullUpdated, res.Status)
	assert.Equal(t, file+".bak_20261017_090507", res.BackupPath)

	backup, err := os.ReadFile(res.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, local, backup)

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, remote, got)
}

func TestPull_BackupsInTheSameSecondDoNotCollide(t *testing.T) {
	app, server, file := newTestApp(t, false)
	first := []byte(`{"version":1}`)
	second := []byte(`{"version":2}`)
	third := []byte(`{"version":3}`)
	require.NoError(t, os.WriteFile(file, first, 0o600))

	server.EXPECT().Pull(gomock.Any(), utils.ContentHash(first)).Return(models.PulledDocument{
		Content: second,
		ETag:    utils.ContentHash(second),
	}, nil)
	server.EXPECT().Pull(gomock.Any(), utils.ContentHash(second)).Return(models.PulledDocument{
		Content: third,
		ETag:    utils.ContentHash(third),
	}, nil)

	res1, err := app.Pull(context.Background())
	require.NoError(t, err)
	res2, err := app.Pull(context.Background())
	require.NoError(t, err)

	assert.Equal(t, file+".bak_20261017_090507", res1.BackupPath)
	assert.Equal(t, file+".bak_20261017_090507_1", res2.BackupPath)

	got, err := os.ReadFile(res1.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = os.ReadFile(res2.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	assert.Len(t, backups(t, file), 2)
}

func TestPull_NoBackup(t *testing.T) {
	app, server, file := newTestApp(t, true)
	require.NoError(t, os.WriteFile(file, []byte(`{"v":1}`), 0o600))
	remote := []byte(`{"v":2}`)

	server.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PulledDocument{Content: remote, ETag: utils.ContentHash(remote)}, nil)

	res, err := app.Pull(context.Background())

	require.NoError(t, err)
	assert.Empty(t, res.BackupPath)
	assert.Empty(t, backups(t, file))
}

func TestPull_LeavesLocalFileUntouched(t *testing.T) {
	local := []byte(`{"v":1}`)

	tests := []struct {
		name       string
		doc        models.PulledDocument
		err        error
		wantStatus PullStatus
		wantErr    error
	}{
		{
			name:       "not modified",
			doc:        models.PulledDocument{ETag: utils.ContentHash(local), NotModified: true},
			wantStatus: PullUnchanged,
		},
		{
			name:       "server already has the same document",
			doc:        models.PulledDocument{Content: local, ETag: utils.ContentHash(local)},
			wantStatus: PullUnchanged,
		},
		{
			name:       "server has no document",
			doc:        models.PulledDocument{Content: models.EmptyDocument, ETag: utils.ContentHash(models.EmptyDocument), Empty: true},
			wantStatus: PullEmpty,
		},
		{
			name:    "unauthorized",
			err:     fmt.Errorf("%w: unauthorized", adapter.ErrUnauthorized),
			wantErr: adapter.ErrUnauthorized,
		},
		{
			name:    "integrity failure",
			err:     adapter.ErrIntegrity,
			wantErr: adapter.ErrIntegrity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, server, file := newTestApp(t, false)
			require.NoError(t, os.WriteFile(file, local, 0o600))

			server.EXPECT().Pull(gomock.Any(), utils.ContentHash(local)).Return(tt.doc, tt.err)

			res, err := app.Pull(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}

			got, readErr := os.ReadFile(file)
			require.NoError(t, readErr)
			assert.Equal(t, local, got)
			assert.Empty(t, backups(t, file))
		})
	}
}

func TestPull_WriteFailureKeepsLocalFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}

	app, server, file := newTestApp(t, true)
	local := []byte(`{"v":1}`)
	require.NoError(t, os.WriteFile(file, local, 0o600))
	remote := []byte(`{"v":2}`)

	dir := filepath.Dir(file)
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	server.EXPECT().Pull(gomock.Any(), gomock.Any()).Return(models.PulledDocument{Content: remote, ETag: utils.ContentHash(remote)}, nil)

	_, err := app.Pull(context.Background())
	require.Error(t, err)

	got, readErr := os.ReadFile(file)
	require.NoError(t, readErr)
	assert.Equal(t, local, got)
}

func TestPush_Success(t *testing.T) {
	app, server, file := newTestApp(t, false)
	local := []byte(`{"version":3,"payload":{}}`)
	require.NoError(t, os.WriteFile(file, local, 0o600))

	ack := models.PushResponse{OK: true, ETag: utils.ContentHash(local), Length: len(local), UpdatedAt: fixedNow}
	server.EXPECT().Push(gomock.Any(), local).Return(ack, nil)

	got, err := app.Push(context.Background())

	require.NoError(t, err)
	assert.Equal(t, ack, got)

	after, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, local, after, "push must not modify the local file")
}

func TestPush_LocalErrors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr error
	}{
		{name: "missing file", content: nil, wantErr: ErrLocalDocumentMissing},
		{name: "malformed json", content: ptr("not valid json"), wantErr: ErrLocalDocumentInvalid},
		{name: "empty file", content: ptr("  \n"), wantErr: ErrLocalDocumentInvalid},
		{name: "json string", content: ptr(`"not valid json"`), wantErr: ErrLocalDocumentInvalid},
		{name: "json array", content: ptr(`[]`), wantErr: ErrLocalDocumentInvalid},
		{name: "json null", content: ptr(`null`), wantErr: ErrLocalDocumentInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no server calls are expected
			app, _, file := newTestApp(t, false)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(file, []byte(*tt.content), 0o600))
			}

			_, err := app.Push(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPush_ServerError(t *testing.T) {
	app, server, file := newTestApp(t, false)
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o600))

	server.EXPECT().Push(gomock.Any(), gomock.Any()).Return(models.PushResponse{}, fmt.Errorf("%w: too big", adapter.ErrPayloadTooLarge))

	_, err := app.Push(context.Background())
	assert.ErrorIs(t, err, adapter.ErrPayloadTooLarge)
}

func TestNewApp_InvalidURL(t *testing.T) {
	_, err := NewApp(&config.ClientConfig{URL: "", Token: "t", File: "f"}, logger.Nop())
	assert.ErrorIs(t, err, adapter.ErrInvalidServerURL)
}

func TestPullStatus_String(t *testing.T) {
	assert.Equal(t, "updated", PullUpdated.String())
	assert.Equal(t, "unchanged", PullUnchanged.String())
	assert.Equal(t, "empty", PullEmpty.String())
	assert.Equal(t, "PullStatus(9)", PullStatus(9).String())
}

func ptr(s string) *string { return &s }
