// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for on-disk configuration. Durations
// are written as strings ("30s", "1h").
type fileConfig struct {
	App struct {
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		TokenLeeway   Duration `json:"token_leeway" yaml:"token_leeway"`
		LogFile       string   `json:"log_file" yaml:"log_file"`
		LogLevel      string   `json:"log_level" yaml:"log_level"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`

		Mailbox struct {
			MaxPending  int      `json:"max_pending" yaml:"max_pending"`
			EnvelopeTTL Duration `json:"envelope_ttl" yaml:"envelope_ttl"`
			FetchLimit  int      `json:"fetch_limit" yaml:"fetch_limit"`
		} `json:"mailbox,omitempty" yaml:"mailbox,omitempty"`

		SaveData struct {
			Path       string `json:"path" yaml:"path"`
			Passphrase string `json:"passphrase" yaml:"passphrase"`
		} `json:"savedata,omitempty" yaml:"savedata,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
		PresenceWindow  Duration `json:"presence_window" yaml:"presence_window"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Workers struct {
		PollInterval  Duration `json:"poll_interval" yaml:"poll_interval"`
		PurgeInterval Duration `json:"purge_interval" yaml:"purge_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file. ".yaml" and ".yml" are decoded as YAML,
// everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			TokenLeeway:   time.Duration(fc.App.TokenLeeway),
			LogFile:       fc.App.LogFile,
			LogLevel:      fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: fc.Storage.DB.DSN,
			},
			Mailbox: Mailbox{
				MaxPending:  fc.Storage.Mailbox.MaxPending,
				EnvelopeTTL: time.Duration(fc.Storage.Mailbox.EnvelopeTTL),
				FetchLimit:  fc.Storage.Mailbox.FetchLimit,
			},
			SaveData: SaveData{
				Path:       fc.Storage.SaveData.Path,
				Passphrase: fc.Storage.SaveData.Passphrase,
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
			PresenceWindow:  time.Duration(fc.Server.PresenceWindow),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PollInterval:  time.Duration(fc.Workers.PollInterval),
			PurgeInterval: time.Duration(fc.Workers.PurgeInterval),
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
