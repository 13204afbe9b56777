// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds relay-side identity token settings.
type ServerApp struct {
	TokenIssuer string
	TokenLeeway time.Duration
	LogLevel    string
}

// ServerStorage groups the relay database and mailbox settings.
type ServerStorage struct {
	DB      DB
	Mailbox Mailbox
}

// ServerWorkers contains relay background worker settings.
type ServerWorkers struct {
	PurgeInterval time.Duration
}

// ServerConfig is the relay view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  Server
	Workers ServerWorkers
}

// GetServerConfig merges flags from args, environment variables, the config
// file and defaults, then validates the relay view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenIssuer: cfg.App.TokenIssuer,
			TokenLeeway: cfg.App.TokenLeeway,
			LogLevel:    cfg.App.LogLevel,
		},
		Storage: ServerStorage{
			DB:      cfg.Storage.DB,
			Mailbox: cfg.Storage.Mailbox,
		},
		Server:  cfg.Server,
		Workers: ServerWorkers{PurgeInterval: cfg.Workers.PurgeInterval},
	}

	return serverCfg, serverCfg.validate()
}
