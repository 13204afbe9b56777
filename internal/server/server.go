// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/handler"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	runners    []Runner
	logger     *logger.Logger
}

// NewServer prepares the relay. runners (the workers) are started next to
// the HTTP listener and share its lifecycle.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, runners ...Runner) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		runners:    runners,
		logger:     logger,
	}, nil
}

// Run listens and serves until ctx is cancelled or a component fails, then
// shuts the listener down and waits for every component to return.
func (s *server) Run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.httpServer.serve(ln)
	})
	g.Go(func() error {
		<-gctx.Done()
		return s.httpServer.shutdown()
	})
	for _, r := range s.runners {
		g.Go(func() error {
			return r.Run(gctx)
		})
	}

	err = g.Wait()
	if err != nil {
		s.logger.Err(err).Str("func", "*server.Run").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
