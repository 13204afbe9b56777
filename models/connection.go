// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Connection describes how a peer (or the local node) is currently reachable
// through the relay network.
type Connection int

const (
	// ConnectionNone means the peer is offline or was never seen.
	ConnectionNone Connection = iota
	// ConnectionTCP means the peer is reachable over a stream transport
	// (the HTTP relay).
	ConnectionTCP
	// ConnectionUDP means the peer is reachable over a datagram transport.
	// The relay backend never reports it; it is kept so that the text
	// representation covers every state a backend may produce.
	ConnectionUDP
)

// String returns the human-readable connection label shown by the
// `/contacts` and `/info` commands.
func (c Connection) String() string {
	switch c {
	case ConnectionNone:
		return "Offline"
	case ConnectionTCP:
		return "Online(TCP)"
	case ConnectionUDP:
		return "Online(UDP)"
	default:
		return "UNKNOWN"
	}
}
