// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrSessionExists is returned when a contact or group with the same
	// number is already in the directory.
	ErrSessionExists = errors.New("session already exists")
	// ErrSessionNotFound is returned when no session matches the given number.
	ErrSessionNotFound = errors.New("session not found")
	// ErrPeerNotFound is returned when a peer number is outside a group's
	// peer list.
	ErrPeerNotFound = errors.New("peer not found")
)
