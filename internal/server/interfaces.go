// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server runs until ctx is cancelled and then shuts down gracefully.
type Server interface {
	Run(ctx context.Context) error
}

// Runner is a background component started alongside the listener.
type Runner interface {
	Run(ctx context.Context) error
}
