// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SaveData is the persisted state of the local node: identity keys, profile,
// contacts and groups. Chat history is never persisted.
type SaveData struct {
	Version       int           `json:"version"`
	BoxSecretKey  []byte        `json:"box_secret_key"`
	SignSeed      []byte        `json:"sign_seed"`
	Name          string        `json:"name"`
	StatusMessage string        `json:"status_message"`
	Friends       []SavedFriend `json:"friends"`
	Groups        []SavedGroup  `json:"groups"`
}

// SavedFriend is one persisted contact.
type SavedFriend struct {
	Num           uint32    `json:"num"`
	PublicKey     PublicKey `json:"public_key"`
	Name          string    `json:"name"`
	StatusMessage string    `json:"status_message"`
	// Confirmed is false while an outgoing friend request is unanswered.
	Confirmed bool `json:"confirmed"`
}

// SavedGroup is one persisted group.
type SavedGroup struct {
	Num   uint32     `json:"num"`
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Peers []PeerInfo `json:"peers"`
}

// GroupInfo is a snapshot of one group known to the backend.
type GroupInfo struct {
	Num   uint32
	Title string
	Peers []PeerInfo
}
