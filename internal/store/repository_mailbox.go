// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/models"
	sq "github.com/Masterminds/squirrel"
)

// mailboxRepository is the SQL implementation of [MailboxRepository].
type mailboxRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewMailboxRepository constructs a [MailboxRepository] on db.
func NewMailboxRepository(db *DB, logger *logger.Logger) MailboxRepository {
	logger.Debug().Msg("creating mailbox repository")
	return &mailboxRepository{db: db, logger: logger}
}

// Enqueue inserts all envelopes in one transaction, then trims each distinct
// recipient back to maxPending. Timestamps are stored as unix milliseconds.
func (r *mailboxRepository) Enqueue(ctx context.Context, envelopes []models.Envelope, maxPending int) error {
	if len(envelopes) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	insert := r.db.builder.Insert(tableEnvelopes).Columns(envelopeColumns[1:]...)
	recipients := make([]string, 0, len(envelopes))
	seen := make(map[string]struct{}, len(envelopes))
	for _, env := range envelopes {
		insert = insert.Values(env.ID, env.To, env.From, string(env.Kind), env.Nonce, env.Payload, env.CreatedAt.UnixMilli())
		if _, ok := seen[env.To]; !ok {
			seen[env.To] = struct{}{}
			recipients = append(recipients, env.To)
		}
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*mailboxRepository.Enqueue").Msg("error inserting envelopes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, to := range recipients {
			if err := r.trim(ctx, tx, to, maxPending); err != nil {
				log.Err(err).Str("func", "*mailboxRepository.Enqueue").Str("mailbox", to).Msg("error trimming mailbox")
				return err
			}
		}
		return nil
	})
}

func (r *mailboxRepository) trim(ctx context.Context, tx *sql.Tx, mailbox string, maxPending int) error {
	if maxPending <= 0 {
		return nil
	}

	countQuery, countArgs, err := r.db.builder.
		Select("COUNT(1)").
		From(tableEnvelopes).
		Where(sq.Eq{"to_id": mailbox}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	over := count - maxPending
	if over <= 0 {
		return nil
	}

	deleteQuery, deleteArgs, err := r.db.builder.
		Delete(tableEnvelopes).
		Where(sq.Expr(trimMailbox, mailbox, over)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Pop selects the oldest envelopes of mailbox and deletes exactly those rows
// in the same transaction.
func (r *mailboxRepository) Pop(ctx context.Context, mailbox string, limit int) ([]models.Envelope, error) {
	if limit <= 0 {
		return nil, nil
	}
	log := logger.FromContext(ctx)

	selectQuery, selectArgs, err := r.db.builder.
		Select(envelopeColumns...).
		From(tableEnvelopes).
		Where(sq.Eq{"to_id": mailbox}).
		OrderBy("seq ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var out []models.Envelope
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		envelopes, seqs, err := r.selectEnvelopes(ctx, tx, selectQuery, selectArgs)
		if err != nil {
			return err
		}
		if len(seqs) == 0 {
			out = nil
			return nil
		}

		deleteQuery, deleteArgs, err := r.db.builder.
			Delete(tableEnvelopes).
			Where(sq.Eq{"seq": seqs}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		out = envelopes
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*mailboxRepository.Pop").Str("mailbox", mailbox).Msg("error popping envelopes")
		return nil, err
	}

	return out, nil
}

func (r *mailboxRepository) selectEnvelopes(ctx context.Context, tx *sql.Tx, query string, args []any) ([]models.Envelope, []int64, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		envelopes []models.Envelope
		seqs      []int64
	)
	for rows.Next() {
		var (
			env       models.Envelope
			seq       int64
			kind      string
			createdAt int64
		)
		if err := rows.Scan(&seq, &env.ID, &env.To, &env.From, &kind, &env.Nonce, &env.Payload, &createdAt); err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		env.Kind = models.EnvelopeKind(kind)
		env.CreatedAt = time.UnixMilli(createdAt).UTC()

		envelopes = append(envelopes, env)
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return envelopes, seqs, nil
}

// PurgeExpired deletes every envelope created before the cutoff and reports
// how many were removed.
func (r *mailboxRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := r.db.builder.
		Delete(tableEnvelopes).
		Where(sq.Lt{"created_at": before.UnixMilli()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mailboxRepository.PurgeExpired").Msg("error purging envelopes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, _ := res.RowsAffected()
	return n, nil
}
