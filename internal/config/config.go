// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It aggregates all sub-configurations and is populated by merging
// values from flags, environment variables and an optional config file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds identity-token parameters and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relay database, the relay mailbox limits and the
	// client savedata file settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the relay listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the relay endpoint the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the intervals of periodic jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenIssuer is the "iss" claim of identity tokens. Client and relay
	// must agree on it.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a client-issued identity token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenLeeway is the clock skew the relay tolerates when checking token
	// expiry.
	// Env: APP_TOKEN_LEEWAY
	TokenLeeway time.Duration `env:"TOKEN_LEEWAY"`

	// LogFile is where the client writes its structured log. The terminal
	// belongs to the line editor, so the client never logs to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relay database connection settings.
	DB DB `envPrefix:"DB_"`

	// Mailbox holds the relay per-recipient queue limits.
	Mailbox Mailbox `envPrefix:"MAILBOX_"`

	// SaveData holds the client state file settings.
	SaveData SaveData `envPrefix:"SAVEDATA_"`
}

// DB holds connection settings for the relay database.
type DB struct {
	// DSN selects the driver: "postgres://..." opens PostgreSQL through pgx,
	// anything else is a SQLite file path or "file:" URI.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mailbox holds relay queue limits.
type Mailbox struct {
	// MaxPending caps the envelopes queued for one recipient. The oldest are
	// dropped first.
	// Env: STORAGE_MAILBOX_MAX_PENDING
	MaxPending int `env:"MAX_PENDING"`

	// EnvelopeTTL is how long an undelivered envelope is kept.
	// Env: STORAGE_MAILBOX_ENVELOPE_TTL
	EnvelopeTTL time.Duration `env:"ENVELOPE_TTL"`

	// FetchLimit caps the envelopes returned by one fetch.
	// Env: STORAGE_MAILBOX_FETCH_LIMIT
	FetchLimit int `env:"FETCH_LIMIT"`
}

// SaveData holds the client state file settings.
type SaveData struct {
	// Path is the savedata file. A temporary sibling "<path>.tmp" is used
	// while writing.
	// Env: STORAGE_SAVEDATA_PATH
	Path string `env:"PATH"`

	// Passphrase enables encryption of the savedata file when not empty.
	// Env: STORAGE_SAVEDATA_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// Server holds network and timeout settings for the relay.
type Server struct {
	// HTTPAddress is the TCP address on which the relay listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// PresenceWindow is how recently a mailbox must have called the relay
	// to be reported online.
	// Env: SERVER_PRESENCE_WINDOW
	PresenceWindow time.Duration `env:"PRESENCE_WINDOW"`
}

// Adapter holds the client's view of the relay.
type Adapter struct {
	// HTTPAddress is the relay base URL; a bare host:port gets "http://".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds one relay round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for periodic jobs.
type Workers struct {
	// PollInterval is how often the client exchanges envelopes with the
	// relay.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PurgeInterval is how often the relay janitor deletes expired
	// envelopes and stale presence rows.
	// Env: WORKERS_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`
}
