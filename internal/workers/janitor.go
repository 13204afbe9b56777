// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/service"
)

// DefaultPurgeInterval is used when no purge interval is configured.
const DefaultPurgeInterval = time.Minute

// janitor deletes envelopes nobody fetched before the TTL and presence rows
// of mailboxes that went quiet.
type janitor struct {
	envelopes service.EnvelopeService
	presence  service.PresenceService
	interval  time.Duration
	logger    *logger.Logger
}

func newJanitor(envelopes service.EnvelopeService, presence service.PresenceService, interval time.Duration, logger *logger.Logger) *janitor {
	if interval <= 0 {
		interval = DefaultPurgeInterval
	}
	return &janitor{
		envelopes: envelopes,
		presence:  presence,
		interval:  interval,
		logger:    logger,
	}
}

// Run purges once per interval until ctx is cancelled. Purge failures are
// logged and retried on the next tick.
func (j *janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("janitor stopped")
			return nil
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *janitor) purge(ctx context.Context) {
	envs, err := j.envelopes.PurgeExpired(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*janitor.purge").Msg("error purging expired envelopes")
	}

	rows, err := j.presence.PurgeStale(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "*janitor.purge").Msg("error purging stale presence")
	}

	if envs > 0 || rows > 0 {
		j.logger.Info().Int64("envelopes", envs).Int64("presence", rows).Msg("purged")
	}
}
