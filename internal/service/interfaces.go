// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-minichat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_service_mock.go -package=mock

// EnvelopeService stores envelopes until their recipients fetch them.
type EnvelopeService interface {
	// Post queues envs on behalf of the authenticated sender. The From field
	// of every envelope is overwritten with sender.
	Post(ctx context.Context, sender string, envs []models.Envelope) error

	// Fetch pops up to limit envelopes addressed to mailbox, oldest first.
	// A limit of zero or above the configured maximum uses the maximum.
	Fetch(ctx context.Context, mailbox string, limit int) ([]models.Envelope, error)

	// PurgeExpired deletes envelopes older than the configured TTL.
	PurgeExpired(ctx context.Context) (int64, error)
}

// PresenceService tracks when each mailbox last talked to the relay.
type PresenceService interface {
	// Touch marks mailbox as seen now.
	Touch(ctx context.Context, mailbox string) error

	// LastSeen returns the mailboxes seen within the presence window.
	LastSeen(ctx context.Context, mailboxes []string) (map[string]time.Time, error)

	// PurgeStale deletes presence rows older than the envelope TTL.
	PurgeStale(ctx context.Context) (int64, error)
}

// AuthService authenticates relay callers.
type AuthService interface {
	// Authenticate validates an identity token and binds its mailbox to the
	// signing key on first use. It returns the mailbox.
	Authenticate(ctx context.Context, token string) (string, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
