// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/store"
	"github.com/MKhiriev/go-minichat/models"
)

// Services groups the relay services handed to the HTTP layer and the
// workers.
type Services struct {
	AuthService     AuthService
	EnvelopeService EnvelopeService
	PresenceService PresenceService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	envelopes := NewEnvelopeValidationService().Wrap(NewEnvelopeService(storages.Mailbox, cfg.Storage.Mailbox, logger))

	return &Services{
		AuthService:     NewAuthService(storages.Identities, cfg.App, logger),
		EnvelopeService: envelopes,
		PresenceService: NewPresenceService(storages.Presence, cfg.Server, cfg.Storage.Mailbox, logger),
		AppInfoService:  appInfo,
	}, nil
}
