// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults fills every field the user left unset.
var defaults = StructuredConfig{
	App: App{
		TokenIssuer:   "minichat-relay",
		TokenDuration: time.Minute,
		TokenLeeway:   5 * time.Second,
		LogFile:       "minichat.log",
		LogLevel:      "info",
	},
	Storage: Storage{
		DB: DB{DSN: "minichat-relay.db"},
		Mailbox: Mailbox{
			MaxPending:  1024,
			EnvelopeTTL: 7 * 24 * time.Hour,
			FetchLimit:  100,
		},
		SaveData: SaveData{Path: "savedata.json"},
	},
	Server: Server{
		HTTPAddress:     "localhost:8080",
		RequestTimeout:  15 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		PresenceWindow:  10 * time.Second,
	},
	Adapter: Adapter{
		HTTPAddress:    "http://localhost:8080",
		RequestTimeout: 5 * time.Second,
	},
	Workers: Workers{
		PollInterval:  time.Second,
		PurgeInterval: time.Minute,
	},
}
