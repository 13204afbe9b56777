// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive minichat client.
//
// An [App] owns the session directory, the pending request queue, the line
// editor and the command registry. [App.Run] is a cooperative loop on a
// single goroutine: it pumps the backend, translates the events it produced
// into directory and history updates, and every few milliseconds drains the
// raw terminal input through the line editor and the command dispatcher.
// Nothing in the package is safe for concurrent use.
package client
