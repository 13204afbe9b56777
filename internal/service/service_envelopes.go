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
	"github.com/MKhiriev/go-minichat/models"
)

// envelopeService is the concrete implementation of EnvelopeService on top of
// a MailboxRepository.
type envelopeService struct {
	mailbox store.MailboxRepository

	// maxPending caps the envelopes kept per recipient.
	maxPending int

	// fetchLimit caps one Fetch.
	fetchLimit int

	// ttl is the age after which an undelivered envelope is purged.
	ttl time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewEnvelopeService constructs an EnvelopeService with the limits from cfg.
func NewEnvelopeService(mailbox store.MailboxRepository, cfg config.Mailbox, logger *logger.Logger) EnvelopeService {
	return &envelopeService{
		mailbox:    mailbox,
		maxPending: cfg.MaxPending,
		fetchLimit: cfg.FetchLimit,
		ttl:        cfg.EnvelopeTTL,
		now:        time.Now,
		logger:     logger,
	}
}

// Post stamps every envelope with the sender and the acceptance time and
// queues the batch.
func (s *envelopeService) Post(ctx context.Context, sender string, envs []models.Envelope) error {
	log := logger.FromContext(ctx)

	if sender == "" {
		return ErrNoMailboxProvided
	}
	if len(envs) == 0 {
		return ErrNoEnvelopesProvided
	}

	now := s.now().UTC()
	stamped := make([]models.Envelope, len(envs))
	for i, env := range envs {
		env.From = sender
		env.CreatedAt = now
		stamped[i] = env
	}

	if err := s.mailbox.Enqueue(ctx, stamped, s.maxPending); err != nil {
		log.Err(err).Str("func", "*envelopeService.Post").Str("sender", sender).Msg("error enqueueing envelopes")
		return fmt.Errorf("enqueue envelopes: %w", err)
	}

	log.Debug().Str("func", "*envelopeService.Post").Str("sender", sender).Int("count", len(stamped)).Msg("envelopes queued")
	return nil
}

func (s *envelopeService) Fetch(ctx context.Context, mailbox string, limit int) ([]models.Envelope, error) {
	if mailbox == "" {
		return nil, ErrNoMailboxProvided
	}
	if limit <= 0 || limit > s.fetchLimit {
		limit = s.fetchLimit
	}

	envs, err := s.mailbox.Pop(ctx, mailbox, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*envelopeService.Fetch").Str("mailbox", mailbox).Msg("error popping envelopes")
		return nil, fmt.Errorf("pop envelopes: %w", err)
	}
	return envs, nil
}

func (s *envelopeService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.mailbox.PurgeExpired(ctx, s.now().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("purge expired envelopes: %w", err)
	}
	return n, nil
}
