// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the minichat relay.
//
// The primary abstraction is [RelayAdapter], which decouples the client
// backend from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRelayAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-minichat/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with the relay.
// Implementations attach a fresh identity token to every call and map
// transport-level errors to the sentinel values defined in this package.
type RelayAdapter interface {
	// PostEnvelopes hands a batch of sealed envelopes to the relay for
	// delivery. The relay overwrites From with the authenticated mailbox.
	PostEnvelopes(ctx context.Context, envelopes []models.Envelope) error

	// FetchEnvelopes pops at most limit pending envelopes addressed to the
	// caller. Popped envelopes are removed from the relay.
	FetchEnvelopes(ctx context.Context, limit int) ([]models.Envelope, error)

	// Presence refreshes the caller's own last-seen time and returns the
	// last-seen time of each requested mailbox the relay has heard from.
	Presence(ctx context.Context, mailboxes []string) (map[string]time.Time, error)

	// Version returns the relay build information. It needs no token.
	Version(ctx context.Context) (models.VersionResponse, error)
}

// TokenSource issues a bearer token for the next request. Identity tokens
// are short-lived, so the adapter asks for a new one on every call.
type TokenSource func() (string, error)
