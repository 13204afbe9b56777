// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-minichat/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

// identityRepository is the SQL implementation of [IdentityRepository]. It
// pins every mailbox to the signing key used on its first request.
type identityRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewIdentityRepository constructs an [IdentityRepository] on db.
func NewIdentityRepository(db *DB, logger *logger.Logger) IdentityRepository {
	logger.Debug().Msg("creating identity repository")
	return &identityRepository{db: db, logger: logger, now: time.Now}
}

// Bind inserts the mailbox/key pair. A unique violation means the mailbox is
// known already; the stored key then decides between success and
// [ErrIdentityMismatch].
//
// Error handling:
//   - unique_violation (postgres 23505, sqlite constraint) → stored key check.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *identityRepository) Bind(ctx context.Context, mailbox, signKey string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(tableIdentities).
		Columns("mailbox", "sign_key", "created_at").
		Values(mailbox, signKey, r.now().UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err == nil {
		log.Info().Str("func", "*identityRepository.Bind").Str("mailbox", mailbox).Msg("identity bound")
		return nil
	}

	if !isUniqueViolation(err) {
		log.Err(err).Str("func", "*identityRepository.Bind").Msg("error inserting identity")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	stored, err := r.SignKey(ctx, mailbox)
	if err != nil {
		return err
	}
	if stored != signKey {
		log.Warn().Str("func", "*identityRepository.Bind").Str("mailbox", mailbox).Msg("signing key mismatch")
		return ErrIdentityMismatch
	}
	return nil
}

// SignKey looks up the key bound to mailbox.
func (r *identityRepository) SignKey(ctx context.Context, mailbox string) (string, error) {
	query, args, err := r.db.builder.
		Select("sign_key").
		From(tableIdentities).
		Where(sq.Eq{"mailbox": mailbox}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var signKey string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&signKey)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrIdentityNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*identityRepository.SignKey").Msg("error selecting identity")
		return "", fmt.Errorf("unexpected DB error: %w", err)
	}

	return signKey, nil
}
