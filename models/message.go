// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageType distinguishes plain chat text from action ("/me") messages.
type MessageType int

const (
	// MessageNormal is a regular chat line.
	MessageNormal MessageType = iota
	// MessageAction is an action line. The client does not render actions.
	MessageAction
)

// Size limits enforced by the backend before anything is queued for delivery.
const (
	MaxNameLength          = 128
	MaxStatusMessageLength = 1007
	MaxMessageLength       = 1372
	MaxFriendRequestLength = 921
	MaxTitleLength         = 128
)
