// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithBodyLimit(t *testing.T) {
	tests := []struct {
		name          string
		limit         int64
		body          string
		chunked       bool
		wantStatus    int
		wantNextCalls int
	}{
		{name: "body under limit", limit: 10, body: "12345", wantStatus: http.StatusOK, wantNextCalls: 1},
		{name: "body at limit", limit: 5, body: "12345", wantStatus: http.StatusOK, wantNextCalls: 1},
		{name: "declared length over limit", limit: 4, body: "12345", wantStatus: http.StatusRequestEntityTooLarge},
		{name: "streamed body over limit", limit: 4, body: "12345", chunked: true, wantStatus: http.StatusRequestEntityTooLarge, wantNextCalls: 1},
		{name: "no limit", limit: 0, body: strings.Repeat("x", 1<<16), wantStatus: http.StatusOK, wantNextCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()
			h.maxBodySize = tt.limit

			calls := 0
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				if _, err := readBody(r); err != nil {
					writeError(w, err)
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/storage", strings.NewReader(tt.body))
			if tt.chunked {
				req.ContentLength = -1
			}
			rr := httptest.NewRecorder()

			h.withBodyLimit(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalls, calls)
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestReadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abc"))
	body, err := readBody(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(body))

	req = httptest.NewRequest(http.MethodPost, "/", io.NopCloser(failingReader{}))
	_, err = readBody(req)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBodyTooLarge)
}
