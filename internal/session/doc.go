// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the in-memory state the client operates on: the
// directory of contacts and groups, the queue of pending inbound requests and
// the chat history of every session.
//
// Contacts and groups share one flat index space. An [Index] multiplexes a
// backend-assigned number and a [Kind] as num*2+kind, so a user can address
// either kind of session with a single integer.
//
// Nothing in this package is safe for concurrent use. All state is owned by
// the client loop goroutine.
package session
