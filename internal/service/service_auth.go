// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"strings"

	"github.com/loadingkuu/LyTodo/internal/config"
	"github.com/loadingkuu/LyTodo/internal/logger"
	"github.com/loadingkuu/LyTodo/models"
)

// authService compares presented credentials against the configured tokens.
//
// Tokens are kept as SHA-256 digests so every comparison runs over equal
// length inputs, and every configured token is compared on each call. The
// time taken therefore does not depend on which token matched, or on how
// long the presented value was.
type authService struct {
	digests [][sha256.Size]byte
	logger  *logger.Logger
}

// NewAuthService constructs an AuthService accepting every non-blank token in
// cfg.Tokens. It fails if none is configured.
func NewAuthService(cfg config.App, logger *logger.Logger) (AuthService, error) {
	digests := make([][sha256.Size]byte, 0, len(cfg.Tokens))
	for _, t := range cfg.Tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		digests = append(digests, sha256.Sum256([]byte(t)))
	}

	if len(digests) == 0 {
		return nil, ErrNoTokensConfigured
	}

	logger.Debug().Int("tokens", len(digests)).Msg("auth service configured")
	return &authService{digests: digests, logger: logger}, nil
}

func (s *authService) Authenticate(ctx context.Context, presented string) (models.Token, error) {
	if presented == "" {
		return models.Token{}, ErrUnauthorized
	}

	digest := sha256.Sum256([]byte(presented))
	match := 0
	for i := range s.digests {
		match |= subtle.ConstantTimeCompare(digest[:], s.digests[i][:])
	}

	if match != 1 {
		return models.Token{}, ErrUnauthorized
	}

	return models.Token{Value: presented, Key: DeriveStorageKey(presented)}, nil
}
