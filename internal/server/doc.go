// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the relay: the HTTP listener and the background
// workers share one lifecycle and stop together, gracefully, when the
// context is cancelled or either of them fails.
package server
