// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/loadingkuu/LyTodo/internal/logger"
)

const (
	legacyUserParam   = "user"
	legacyDefaultUser = "default"
)

// withLegacyUser guards the legacy storage routes. Older clients address a
// document with "?user=<name>" under a shared token, while this server keeps
// exactly one document per token. The parameter is sanitized the way those
// clients expect (only letters, digits, '-' and '_' survive, an empty result
// means "default"); any user other than "default" is rejected so two users
// can never overwrite each other's document.
func (h *Handler) withLegacyUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := sanitizeLegacyUser(r.URL.Query().Get(legacyUserParam))
		if user != legacyDefaultUser {
			log := logger.FromRequest(r)
			log.Err(ErrUnsupportedUser).Str("func", "*Handler.withLegacyUser").
				Str("user", user).
				Msg("rejected legacy request for a non-default user")
			writeError(w, ErrUnsupportedUser)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sanitizeLegacyUser(user string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return -1
	}, user)
	if safe == "" {
		return legacyDefaultUser
	}
	return safe
}
