// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-minichat/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend is the messaging collaborator driven by the client loop. Every
// method except Iterate is local and fast: mutations are applied to the
// in-memory state at once and whatever has to reach other nodes is queued
// until the next Iterate.
//
// Backend is not safe for concurrent use. The client loop is its only caller.
type Backend interface {
	// Iterate performs one round of network work: it flushes queued
	// envelopes, fetches the mailbox, refreshes contact presence and turns
	// everything received into events. Calls closer together than the
	// configured poll interval return immediately.
	Iterate(ctx context.Context) error

	// IterationInterval is how long the loop should sleep between two
	// Iterate calls.
	IterationInterval() time.Duration

	// Events returns the events accumulated since the previous call, oldest
	// first, and clears the queue.
	Events() []models.Event

	// Self returns a snapshot of the local identity.
	Self() models.SelfInfo

	// Friends returns all contacts ordered by friend number.
	Friends() []models.FriendInfo

	// Groups returns all groups ordered by group number.
	Groups() []models.GroupInfo

	// SetName changes the local display name and announces it to contacts
	// and group peers.
	SetName(name string) error

	// SetStatusMessage changes the local status message and announces it to
	// contacts.
	SetStatusMessage(status string) error

	// AddFriend sends a friend request to address and returns the number of
	// the new, not yet confirmed, contact.
	AddFriend(address, message string) (uint32, error)

	// AddFriendNoRequest accepts a friend request from pk and returns the
	// number of the new contact.
	AddFriendNoRequest(pk models.PublicKey) (uint32, error)

	// DeleteFriend forgets a contact.
	DeleteFriend(friendNum uint32) error

	// SendFriendMessage queues a message to a confirmed contact.
	SendFriendMessage(friendNum uint32, typ models.MessageType, text string) error

	// NewGroup creates an empty group owned by the local node.
	NewGroup() (uint32, error)

	// JoinGroup joins the group described by an invite cookie received
	// from friendNum.
	JoinGroup(friendNum uint32, cookie []byte) (uint32, error)

	// InviteToGroup sends an invite for groupNum to friendNum.
	InviteToGroup(friendNum, groupNum uint32) error

	// SetGroupTitle changes a group title and announces it to the peers.
	SetGroupTitle(groupNum uint32, title string) error

	// DeleteGroup leaves a group and forgets it.
	DeleteGroup(groupNum uint32) error

	// GroupPeers returns the current peers of a group, the local node
	// included. Peer numbers are indexes into the returned slice.
	GroupPeers(groupNum uint32) ([]models.PeerInfo, error)

	// SendGroupMessage queues a message to every peer of a group.
	SendGroupMessage(groupNum uint32, typ models.MessageType, text string) error

	// Save persists the backend state.
	Save() error
}
