// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package tui

// RawInput is unavailable on this platform.
type RawInput struct{}

// OpenRawInput always fails with [ErrUnsupportedPlatform].
func OpenRawInput() (*RawInput, error) {
	return nil, ErrUnsupportedPlatform
}

// Drain implements the input source contract.
func (r *RawInput) Drain() ([]byte, error) { return nil, ErrUnsupportedPlatform }

// Close implements [io.Closer].
func (r *RawInput) Close() error { return nil }
