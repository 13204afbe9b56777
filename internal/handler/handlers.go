// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler builds the relay transports.
package handler

import (
	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/handler/http"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler when an address is configured.
// Without one it returns errNoHandlersAreCreated.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
