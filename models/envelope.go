// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EnvelopeKind tells the recipient how to interpret the sealed payload of an
// [Envelope].
type EnvelopeKind string

const (
	EnvelopeFriendRequest EnvelopeKind = "friend_request"
	EnvelopeFriendAccept  EnvelopeKind = "friend_accept"
	EnvelopeProfile       EnvelopeKind = "profile"
	EnvelopeMessage       EnvelopeKind = "message"
	EnvelopeGroupInvite   EnvelopeKind = "group_invite"
	EnvelopeGroupJoin     EnvelopeKind = "group_join"
	EnvelopeGroupMessage  EnvelopeKind = "group_message"
	EnvelopeGroupTitle    EnvelopeKind = "group_title"
	EnvelopeGroupLeave    EnvelopeKind = "group_leave"
)

// Valid reports whether k is one of the known envelope kinds.
func (k EnvelopeKind) Valid() bool {
	switch k {
	case EnvelopeFriendRequest, EnvelopeFriendAccept, EnvelopeProfile, EnvelopeMessage,
		EnvelopeGroupInvite, EnvelopeGroupJoin, EnvelopeGroupMessage, EnvelopeGroupTitle, EnvelopeGroupLeave:
		return true
	}
	return false
}

// Envelope is the unit stored and forwarded by the relay. The relay only
// sees routing metadata; Payload is sealed to the recipient's public key.
type Envelope struct {
	// ID is a UUIDv7 assigned by the sender.
	ID string `json:"id"`
	// From is the sender mailbox (lower-case hex public key). The relay
	// overwrites it with the authenticated identity.
	From string `json:"from"`
	// To is the recipient mailbox.
	To string `json:"to"`
	// Kind selects how the payload is decoded.
	Kind EnvelopeKind `json:"kind"`
	// Nonce is the 24-byte box nonce.
	Nonce []byte `json:"nonce"`
	// Payload is the sealed JSON encoded [EnvelopePayload].
	Payload []byte `json:"payload"`
	// CreatedAt is set by the relay when the envelope is accepted.
	CreatedAt time.Time `json:"created_at"`
}

// EnvelopePayload is the plaintext carried inside an envelope. Which fields
// are meaningful depends on the envelope kind.
type EnvelopePayload struct {
	Name          string      `json:"name,omitempty"`
	StatusMessage string      `json:"status_message,omitempty"`
	Text          string      `json:"text,omitempty"`
	Type          MessageType `json:"type,omitempty"`
	GroupID       string      `json:"group_id,omitempty"`
	Title         string      `json:"title,omitempty"`
	Cookie        []byte      `json:"cookie,omitempty"`
}

// GroupCookie is the join token passed inside a group invite. The invitee
// hands it back unchanged when accepting.
type GroupCookie struct {
	GroupID string     `json:"group_id"`
	Title   string     `json:"title"`
	Peers   []PeerInfo `json:"peers"`
}

// PostEnvelopesRequest is the body of POST /api/v1/envelopes.
type PostEnvelopesRequest struct {
	Envelopes []Envelope `json:"envelopes"`
}

// FetchEnvelopesResponse is the body returned by GET /api/v1/envelopes.
type FetchEnvelopesResponse struct {
	Envelopes []Envelope `json:"envelopes"`
}

// PresenceRequest is the body of POST /api/v1/presence.
type PresenceRequest struct {
	// Mailboxes are the keys whose last-seen time the caller wants to know.
	Mailboxes []string `json:"mailboxes"`
}

// PresenceResponse maps mailbox to the last time its owner called the relay.
// Mailboxes never seen are omitted.
type PresenceResponse struct {
	LastSeen map[string]time.Time `json:"last_seen"`
}

// VersionResponse is the body returned by GET /api/v1/version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
