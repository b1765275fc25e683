// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/loadingkuu/LyTodo/internal/logger"
)

const hashHeader = "HashSHA256"

// withHashCheck verifies the HashSHA256 header of a push against an
// HMAC-SHA256 of the body. It is a no-op when no hash key is configured.
func (h *Handler) withHashCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := readBody(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withHashCheck").Msg("failed to read request body")
			writeError(w, err)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, r.Header.Get(hashHeader)) {
			log.Error().Str("func", "*Handler.withHashCheck").
				Str("hash from request", r.Header.Get(hashHeader)).
				Msg("hashes are not equal")
			writeError(w, ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
