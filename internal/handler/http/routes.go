// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	storagePath       = "/api/storage"
	legacyStoragePath = "/storage"
	versionPath       = "/api/version"
	healthPath        = "/api/health"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(versionPath, h.getServerVersion)
		r.Get(healthPath, h.health)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get(storagePath, h.pull)
		r.With(h.withLegacyUser).Get(legacyStoragePath, h.pull)

		r.Group(func(r chi.Router) {
			r.Use(h.withBodyLimit, h.withHashCheck)

			r.Post(storagePath, h.push)
			r.Put(storagePath, h.push)
			r.With(h.withLegacyUser).Post(legacyStoragePath, h.push)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
