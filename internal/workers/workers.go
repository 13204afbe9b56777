// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/service"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers creates the relay jobs: the mailbox janitor.
func NewWorkers(services *service.Services, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{newJanitor(services.EnvelopeService, services.PresenceService, cfg.PurgeInterval, logger)},
		logger:  logger,
	}
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	w.logger.Info().Int("count", len(w.workers)).Msg("starting workers")

	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}
