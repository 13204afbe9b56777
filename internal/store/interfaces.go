// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-minichat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_store_mock.go -package=mock

// MailboxRepository queues envelopes per recipient mailbox.
type MailboxRepository interface {
	// Enqueue stores envelopes and trims every touched mailbox to maxPending
	// entries, dropping the oldest first.
	Enqueue(ctx context.Context, envelopes []models.Envelope, maxPending int) error
	// Pop removes and returns up to limit envelopes for mailbox, oldest first.
	Pop(ctx context.Context, mailbox string, limit int) ([]models.Envelope, error)
	// PurgeExpired deletes envelopes created before the cutoff.
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// IdentityRepository binds a mailbox to the signing key first seen for it.
type IdentityRepository interface {
	// Bind records signKey for mailbox. Binding the same pair again is a
	// no-op; a different key yields [ErrIdentityMismatch].
	Bind(ctx context.Context, mailbox, signKey string) error
	// SignKey returns the bound key or [ErrIdentityNotFound].
	SignKey(ctx context.Context, mailbox string) (string, error)
}

// PresenceRepository tracks when each mailbox last called the relay.
type PresenceRepository interface {
	Touch(ctx context.Context, mailbox string, at time.Time) error
	LastSeen(ctx context.Context, mailboxes []string) (map[string]time.Time, error)
	PurgeStale(ctx context.Context, before time.Time) (int64, error)
}
