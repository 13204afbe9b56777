// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Event is an inbound notification produced by the backend during one
// iteration. The set of implementations is closed; consumers switch on the
// concrete type.
type Event interface {
	isEvent()
}

// SelfConnectionChanged reports a change of the local node's connection.
type SelfConnectionChanged struct {
	Connection Connection
}

// FriendConnectionChanged reports a change of a contact's connection.
type FriendConnectionChanged struct {
	FriendNum  uint32
	Connection Connection
}

// FriendMessage carries one message received from a contact.
type FriendMessage struct {
	FriendNum uint32
	Type      MessageType
	Text      string
}

// FriendName reports that a contact changed their display name.
type FriendName struct {
	FriendNum uint32
	Name      string
}

// FriendStatusMessage reports that a contact changed their status message.
type FriendStatusMessage struct {
	FriendNum     uint32
	StatusMessage string
}

// FriendRequest carries an inbound friend request from an unknown key.
type FriendRequest struct {
	PublicKey PublicKey
	Message   string
}

// GroupInvite carries an invitation from a contact to join a group. Cookie is
// opaque to the client and is handed back to the backend on accept.
type GroupInvite struct {
	FriendNum uint32
	AV        bool
	Cookie    []byte
}

// GroupTitle reports a new title of a group.
type GroupTitle struct {
	GroupNum uint32
	PeerNum  uint32
	Title    string
}

// GroupMessage carries one message posted to a group. Own is set when the
// message was posted by the local node.
type GroupMessage struct {
	GroupNum uint32
	PeerNum  uint32
	Own      bool
	Type     MessageType
	Text     string
}

// GroupPeerListChanged reports that peers joined or left a group. Peers is
// the list right after the change; PeerNum of later events in the same batch
// indexes into it.
type GroupPeerListChanged struct {
	GroupNum uint32
	Peers    []PeerInfo
}

// GroupPeerName reports that a group peer changed their display name.
type GroupPeerName struct {
	GroupNum uint32
	PeerNum  uint32
	Name     string
}

func (SelfConnectionChanged) isEvent()   {}
func (FriendConnectionChanged) isEvent() {}
func (FriendMessage) isEvent()           {}
func (FriendName) isEvent()              {}
func (FriendStatusMessage) isEvent()     {}
func (FriendRequest) isEvent()           {}
func (GroupInvite) isEvent()             {}
func (GroupTitle) isEvent()              {}
func (GroupMessage) isEvent()            {}
func (GroupPeerListChanged) isEvent()    {}
func (GroupPeerName) isEvent()           {}
