// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrIdentityMismatch        = errors.New("mailbox is bound to a different signing key")

	ErrNoEnvelopesProvided = errors.New("no envelopes provided")
	ErrNoMailboxProvided   = errors.New("no mailbox provided")
)

// BackendError is a failed backend call. Code is the numeric reason of the
// operation, see the ErrCode constants.
type BackendError struct {
	Op   string
	Code int
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s failed, errcode:%d", e.Op, e.Code)
}

func backendError(op string, code int) error {
	return &BackendError{Op: op, Code: code}
}

// Operation names reported in BackendError.Op.
const (
	OpAddFriend     = "add friend"
	OpAcceptFriend  = "accept friend"
	OpDeleteFriend  = "delete friend"
	OpSendMessage   = "send message"
	OpSetName       = "set name"
	OpSetStatus     = "set status message"
	OpNewGroup      = "new group"
	OpJoinGroup     = "join group"
	OpInviteToGroup = "invite to group"
	OpSetTitle      = "set title"
	OpDeleteGroup   = "delete group"
	OpGroupPeers    = "get group peers"
	OpSave          = "save"
)

// Error codes. Every operation numbers its failures on its own, following
// the classic Tox numbering so that codes read the same in bug reports.
const (
	ErrCodeFriendAddTooLong     = 2
	ErrCodeFriendAddNoMessage   = 3
	ErrCodeFriendAddOwnKey      = 4
	ErrCodeFriendAddAlreadySent = 5
	ErrCodeFriendAddBadChecksum = 6
)

const ErrCodeFriendDeleteNotFound = 1

const (
	ErrCodeSendFriendNotFound     = 2
	ErrCodeSendFriendNotConnected = 3
	ErrCodeSendTooLong            = 5
	ErrCodeSendEmpty              = 6
)

const ErrCodeSetInfoTooLong = 2

const (
	ErrCodeJoinInvalidCookie  = 1
	ErrCodeJoinFriendNotFound = 3
	ErrCodeJoinDuplicate      = 4
	ErrCodeJoinFailSend       = 6
)

const (
	ErrCodeGroupNotFound       = 1
	ErrCodeInviteFailSend      = 2
	ErrCodeInviteNoConnection  = 3
	ErrCodeTitleInvalidLength  = 2
	ErrCodeTitleFailSend       = 3
	ErrCodeGroupSendTooLong    = 2
	ErrCodeGroupSendFailSend   = 4
	ErrCodeGroupDeleteFailSend = 2
)

const ErrCodeSaveFailed = 1
