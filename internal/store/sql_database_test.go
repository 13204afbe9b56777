// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN(" PostgreSQL://localhost/db"))
	assert.False(t, isPostgresDSN("relay.db"))
	assert.False(t, isPostgresDSN("file:relay.db?cache=shared"))
}

func TestEnsureDir(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, ensureDir("file:"+filepath.Join(root, "a", "b", "relay.db")+"?_busy_timeout=5000"))
	assert.DirExists(t, filepath.Join(root, "a", "b"))

	assert.NoError(t, ensureDir(":memory:"))
	assert.NoError(t, ensureDir("relay.db"))
}

func TestNewConnectSQLite_EmptyPath(t *testing.T) {
	_, err := NewConnectSQLite(context.Background(), config.DB{DSN: " "}, logger.Nop())
	assert.Error(t, err)
}

func TestNewDB_PlaceholderPerDialect(t *testing.T) {
	pg, _ := newTestDB(t, migrations.DialectPostgres)
	lite, _ := newTestDB(t, migrations.DialectSQLite)

	pgQuery, _, err := pg.builder.Select("x").From("t").Where("a = ?", 1).ToSql()
	require.NoError(t, err)
	liteQuery, _, err := lite.builder.Select("x").From("t").Where("a = ?", 1).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT x FROM t WHERE a = $1", pgQuery)
	assert.Equal(t, "SELECT x FROM t WHERE a = ?", liteQuery)
	assert.Equal(t, migrations.DialectPostgres, pg.Dialect())
}

func TestWithTx_BeginFails(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectSQLite)
	mock.ExpectBegin().WillReturnError(errors.New("no conn"))

	err := db.withTx(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestWithTx_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newTestDB(t, migrations.DialectSQLite)
	for range maxTxAttempts {
		mock.ExpectBegin().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	}

	err := db.withTx(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.ConnectionFailure)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}))
	assert.False(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}))
	assert.False(t, isUniqueViolation(errors.New("x")))
}
