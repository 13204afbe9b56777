// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/store"
)

type presenceService struct {
	presence store.PresenceRepository

	// window is how recent a touch must be for the mailbox to count as
	// online.
	window time.Duration

	// retention is how long presence rows are kept at all.
	retention time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewPresenceService constructs a PresenceService. Presence rows are kept
// as long as undelivered envelopes.
func NewPresenceService(presence store.PresenceRepository, serverCfg config.Server, mailboxCfg config.Mailbox, logger *logger.Logger) PresenceService {
	return &presenceService{
		presence:  presence,
		window:    serverCfg.PresenceWindow,
		retention: mailboxCfg.EnvelopeTTL,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *presenceService) Touch(ctx context.Context, mailbox string) error {
	if mailbox == "" {
		return ErrNoMailboxProvided
	}
	if err := s.presence.Touch(ctx, mailbox, s.now()); err != nil {
		return fmt.Errorf("touch presence: %w", err)
	}
	return nil
}

func (s *presenceService) LastSeen(ctx context.Context, mailboxes []string) (map[string]time.Time, error) {
	seen, err := s.presence.LastSeen(ctx, mailboxes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*presenceService.LastSeen").Msg("error reading presence")
		return nil, fmt.Errorf("read presence: %w", err)
	}

	cutoff := s.now().Add(-s.window)
	for mailbox, at := range seen {
		if at.Before(cutoff) {
			delete(seen, mailbox)
		}
	}
	return seen, nil
}

func (s *presenceService) PurgeStale(ctx context.Context) (int64, error) {
	n, err := s.presence.PurgeStale(ctx, s.now().Add(-s.retention))
	if err != nil {
		return 0, fmt.Errorf("purge stale presence: %w", err)
	}
	return n, nil
}
