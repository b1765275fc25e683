// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/loadingkuu/LyTodo/internal/app"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/internal/utils"
)

const (
	authorizationHeader = "Authorization"
	tokenHeader         = "X-Token"

	unauthorizedMessage = app.MsgUnauthorized
)

// auth resolves the request credential to a token namespace and stores it in
// the request context under [utils.TokenCtxKey].
//
// The credential is taken from "Authorization: Bearer <token>", falling back
// to "X-Token: <token>". A missing, malformed or unknown credential is
// answered with 401 and the same body, so the response does not tell which
// of them happened.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		presented, err := credentialFromRequest(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.Authenticate(ctx, presented)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("authentication failed")
			http.Error(w, unauthorizedMessage, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithToken(ctx, token)))
	})
}

func credentialFromRequest(r *http.Request) (string, error) {
	if header := r.Header.Get(authorizationHeader); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
		}
		return token, nil
	}

	if token := r.Header.Get(tokenHeader); token != "" {
		return token, nil
	}

	return "", ErrMissingCredentials
}
