// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
)

// Storages groups the relay repositories so they can be handed to the
// service layer as one value.
type Storages struct {
	DB         *DB
	Mailbox    MailboxRepository
	Identities IdentityRepository
	Presence   PresenceRepository
}

// NewStorages connects to the relay database, applies migrations and wires
// every repository to the same connection.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DB:         db,
		Mailbox:    NewMailboxRepository(db, logger),
		Identities: NewIdentityRepository(db, logger),
		Presence:   NewPresenceRepository(db, logger),
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
