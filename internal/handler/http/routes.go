// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Relay endpoints.
const (
	envelopesPath = "/api/v1/envelopes"
	presencePath  = "/api/v1/presence"
	versionPath   = "/api/v1/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get(versionPath, h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.limitBody).Post(envelopesPath, h.postEnvelopes)
		r.Get(envelopesPath, h.fetchEnvelopes)
		r.With(h.limitBody).Post(presencePath, h.presence)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
