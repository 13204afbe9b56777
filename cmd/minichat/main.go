// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-minichat/internal/adapter"
	"github.com/MKhiriev/go-minichat/internal/client"
	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/service"
	"github.com/MKhiriev/go-minichat/internal/store"
	"github.com/MKhiriev/go-minichat/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `Usage: minichat [-h|--help]

A terminal chat client talking through a minichat relay.

Settings are read from the environment and the optional CONFIG file:
  ADAPTER_ADDRESS               relay base URL
  ADAPTER_REQUEST_TIMEOUT       timeout of one relay request
  STORAGE_SAVEDATA_PATH         savedata file
  STORAGE_SAVEDATA_PASSPHRASE   encrypt the savedata file with this passphrase
  WORKERS_POLL_INTERVAL         how often the relay is polled
  APP_LOG_FILE                  structured log file
  CONFIG                        JSON or YAML config file

Type /guide inside the client for a walkthrough.
`

func main() {
	if err := parseArgs(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "minichat: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs accepts nothing but -h/--help.
func parseArgs(args []string) error {
	fs := flag.NewFlagSet("minichat", flag.ContinueOnError)
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return nil
}

func run() error {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("minichat", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)

	saveData := store.NewSaveDataStore(cfg.Storage.SaveData)
	identity, sd, err := service.LoadProfile(saveData, log)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	relay, err := adapter.NewHTTPRelayAdapter(cfg.Adapter, service.NewTokenSource(identity, cfg.App), log)
	if err != nil {
		return fmt.Errorf("create relay adapter: %w", err)
	}

	backend := service.NewRelayBackend(identity, sd, relay, saveData, cfg.Workers, log)

	input, err := tui.OpenRawInput()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		if err := input.Close(); err != nil {
			log.Err(err).Msg("error restoring terminal")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	err = client.NewApp(backend, input, os.Stdout, log).Run(ctx)
	if saveErr := backend.Save(); saveErr != nil {
		log.Err(saveErr).Msg("error saving on exit")
	}
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
