// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build darwin || freebsd || netbsd || openbsd

package tui

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TIOCGETA
	ioctlSetTermios = unix.TIOCSETAF
)

// The controlling terminal is always reachable as /dev/tty.
func stdinPath() (string, error) {
	return "/dev/tty", nil
}
