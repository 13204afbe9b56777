// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/service"
)

// DefaultMaxBodyBytes caps POST bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

type Handler struct {
	services *service.Services

	maxBodyBytes int64
	logger       *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMaxBodyBytes sets the POST body limit. Non-positive values keep the
// default.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:     services,
		maxBodyBytes: DefaultMaxBodyBytes,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Int64("max_body_bytes", h.maxBodyBytes).Msg("http handler created")
	return h
}
