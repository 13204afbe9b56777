// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build linux || darwin || freebsd || netbsd || openbsd

package tui

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const drainChunk = 128

// RawInput delivers bytes typed on the controlling terminal without line
// buffering or local echo. Reads never block.
//
// Stdin is reopened under its own descriptor so that switching it to
// non-blocking mode cannot affect stdout when both share a file object.
type RawInput struct {
	fd    int
	saved *term.State
	buf   []byte
}

// OpenRawInput reopens stdin, makes it non-blocking and switches the terminal
// to non-canonical mode without echo. Signals stay enabled. Close restores
// the terminal.
func OpenRawInput() (*RawInput, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	path, err := stdinPath()
	if err != nil {
		return nil, fmt.Errorf("get stdin filename failed: %w", err)
	}

	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("reopen stdin failed: %w", err)
	}

	saved, err := term.GetState(fd)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("get terminal state: %w", err)
	}

	if err = setNonCanonical(fd); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("set terminal mode: %w", err)
	}

	return &RawInput{fd: fd, saved: saved, buf: make([]byte, drainChunk)}, nil
}

// Drain returns every byte currently available. It returns an empty slice
// when nothing was typed.
func (r *RawInput) Drain() ([]byte, error) {
	var out []byte
	for {
		n, err := unix.Read(r.fd, r.buf)
		if n > 0 {
			out = append(out, r.buf[:n]...)
		}
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
				return out, nil
			}
			return out, fmt.Errorf("read stdin: %w", err)
		}
		if n <= 0 {
			return out, nil
		}
	}
}

// Close restores the terminal mode and closes the reopened descriptor.
func (r *RawInput) Close() error {
	err := term.Restore(r.fd, r.saved)
	return errors.Join(err, unix.Close(r.fd))
}

func setNonCanonical(fd int) error {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}

	t.Lflag &^= unix.ICANON | unix.ECHO
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}
