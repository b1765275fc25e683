// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// atomic file replacement, HTTP response writing and HTTP client
// initialization.
package utils

import (
	"context"

	"github.com/loadingkuu/LyTodo/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key used to store the authenticated [models.Token] in
// the context. The auth middleware sets it; sync handlers read it with
// GetTokenFromContext.
var TokenCtxKey = contextKey("token")

// WithToken returns a copy of ctx carrying the authenticated token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the authenticated token from the context.
//
// Returns the token and an ok flag:
//   - ok == true : value is found and carries a storage key
//   - ok == false: value is missing, has an unexpected type or no key
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	if !ok || token.Key == "" {
		return models.Token{}, false
	}
	return token, true
}
