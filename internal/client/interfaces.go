// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// InputSource supplies raw bytes typed by the user.
type InputSource interface {
	// Drain returns every byte available right now without blocking. An
	// empty result means nothing was typed.
	Drain() ([]byte, error)
}
