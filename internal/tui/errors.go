// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

var (
	// ErrNotTerminal is returned when stdin or stdout is not a terminal.
	ErrNotTerminal = errors.New("stdout & stdin should be connected to tty")
	// ErrUnsupportedPlatform is returned on systems without a raw input
	// implementation.
	ErrUnsupportedPlatform = errors.New("raw terminal input is not supported on this platform")
)

// HumanizeNetworkError turns transport failures into a short message fit for
// the status line.
func HumanizeNetworkError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network is down or relay is unreachable"
	}

	return err.Error()
}
