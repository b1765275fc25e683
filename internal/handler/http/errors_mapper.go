// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/loadingkuu/LyTodo/internal/service"
	"github.com/loadingkuu/LyTodo/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:    http.StatusUnauthorized,
	service.ErrInvalidDocument: http.StatusBadRequest,

	ErrBodyTooLarge:         http.StatusRequestEntityTooLarge,
	ErrIntegrityCheckFailed: http.StatusBadRequest,
	ErrUnsupportedUser:      http.StatusBadRequest,

	store.ErrInvalidKey: http.StatusInternalServerError,
	store.ErrStorageIO:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry
// the sentinel's message; server errors only carry the status text so that
// storage details never reach the caller.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	msg := http.StatusText(status)
	if status < http.StatusInternalServerError {
		for target := range errorStatusMap {
			if errors.Is(err, target) {
				msg = target.Error()
				break
			}
		}
	}

	http.Error(w, msg, status)
}
