// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses relay configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a relay listen address in format [host]:[port]
//	-d database DSN (SQLite path or postgres:// URI)
//	-c/-config JSON or YAML config file path
//	-token-issuer identity token issuer name
//	-token-leeway accepted clock skew (e.g. "5s")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-max-pending envelopes kept per recipient
//	-envelope-ttl lifetime of an undelivered envelope
//	-purge-interval janitor period
//	-presence-window how long a mailbox counts as online after its last call
//	-log-level zerolog level
//
// -h and -help print usage and return flag.ErrHelp.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var tokenIssuer string
	var tokenLeeway time.Duration
	var requestTimeout time.Duration
	var maxPending int
	var envelopeTTL time.Duration
	var purgeInterval time.Duration
	var presenceWindow time.Duration
	var logLevel string

	fs := flag.NewFlagSet("relay", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (.json, .yaml, .yml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenLeeway, "token-leeway", 0, "Token clock skew leeway (e.g., 5s)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&maxPending, "max-pending", 0, "Envelopes kept per recipient")
	fs.DurationVar(&envelopeTTL, "envelope-ttl", 0, "Undelivered envelope lifetime (e.g., 168h)")
	fs.DurationVar(&purgeInterval, "purge-interval", 0, "Expired envelope purge period")
	fs.DurationVar(&presenceWindow, "presence-window", 0, "Online window after the last call")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrInvalidFlags, fs.Args())
	}

	return &StructuredConfig{
		App: App{
			TokenIssuer: tokenIssuer,
			TokenLeeway: tokenLeeway,
			LogLevel:    logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Mailbox: Mailbox{
				MaxPending:  maxPending,
				EnvelopeTTL: envelopeTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			PresenceWindow: presenceWindow,
		},
		Workers: Workers{
			PurgeInterval: purgeInterval,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
