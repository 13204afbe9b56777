// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-minichat/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

type presenceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPresenceRepository constructs a [PresenceRepository] on db.
func NewPresenceRepository(db *DB, logger *logger.Logger) PresenceRepository {
	logger.Debug().Msg("creating presence repository")
	return &presenceRepository{db: db, logger: logger}
}

func (r *presenceRepository) Touch(ctx context.Context, mailbox string, at time.Time) error {
	query, args, err := r.db.builder.
		Insert(tablePresence).
		Columns("mailbox", "last_seen").
		Values(mailbox, at.UnixMilli()).
		Suffix(upsertPresence).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*presenceRepository.Touch").Msg("error upserting presence")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LastSeen returns the known subset of mailboxes. Unknown mailboxes are
// absent from the map.
func (r *presenceRepository) LastSeen(ctx context.Context, mailboxes []string) (map[string]time.Time, error) {
	result := make(map[string]time.Time, len(mailboxes))
	if len(mailboxes) == 0 {
		return result, nil
	}

	query, args, err := r.db.builder.
		Select("mailbox", "last_seen").
		From(tablePresence).
		Where(sq.Eq{"mailbox": mailboxes}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*presenceRepository.LastSeen").Msg("error selecting presence")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			mailbox  string
			lastSeen int64
		)
		if err := rows.Scan(&mailbox, &lastSeen); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result[mailbox] = time.UnixMilli(lastSeen).UTC()
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

func (r *presenceRepository) PurgeStale(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := r.db.builder.
		Delete(tablePresence).
		Where(sq.Lt{"last_seen": before.UnixMilli()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}
