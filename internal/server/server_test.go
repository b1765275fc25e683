// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/handler"
	handlerhttp "github.com/loadingkuu/LyTodo/internal/handler/http"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(ctx context.Context) string { return "test" }

func newTestHandlers() *handler.Handlers {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: "127.0.0.1:0"}}
	services := &service.Services{AppInfoService: stubAppInfo{}}
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(services, cfg, logger.Nop())}
}

func TestNewServer_Errors(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	_, err := NewServer(nil, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(newTestHandlers(), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_RunServesAndStopsOnCancel(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	addr := make(chan string, 1)
	s := srv.(*server)
	s.listen = func(network, address string) (net.Listener, error) {
		ln, err := net.Listen(network, address)
		if err == nil {
			addr <- ln.Addr().String()
		}
		return ln, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	base := "http://" + <-addr
	resp, err := http.Get(base + "/api/version")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "test", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunListenError(t *testing.T) {
	srv, err := NewServer(newTestHandlers(), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	listenErr := errors.New("address in use")
	srv.(*server).listen = func(string, string) (net.Listener, error) { return nil, listenErr }

	err = srv.Run(context.Background())
	assert.ErrorIs(t, err, listenErr)
}
