// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SelfInfo is a snapshot of the local identity as exposed by the backend.
type SelfInfo struct {
	// Name is the display name announced to contacts.
	Name string
	// StatusMessage is the free-form status text announced to contacts.
	StatusMessage string
	// PublicKey is the local public key.
	PublicKey PublicKey
	// Address is the shareable address other users pass to `/add`.
	Address string
	// Connection is the local node's connection to the relay.
	Connection Connection
}

// FriendInfo is a snapshot of one contact known to the backend. It is used to
// populate the session directory at startup.
type FriendInfo struct {
	// Num is the backend-assigned friend number.
	Num uint32
	// Name is the contact's last known display name.
	Name string
	// StatusMessage is the contact's last known status message.
	StatusMessage string
	// PublicKey is the contact's public key.
	PublicKey PublicKey
	// Connection is the contact's last known connection state.
	Connection Connection
}

// PeerInfo describes one member of a group session.
type PeerInfo struct {
	// PublicKey is the peer's public key.
	PublicKey PublicKey `json:"public_key"`
	// Name is the peer's display name.
	Name string `json:"name"`
}
