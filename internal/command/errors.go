// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import "errors"

var (
	// ErrInvalidCommand is returned by [Registry.Dispatch] when no command
	// matches the name.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrWrongArity is returned by [Registry.Dispatch] when fewer arguments
	// than the contract minimum were supplied. The handler is not invoked.
	ErrWrongArity = errors.New("wrong number of cmd args")
)
