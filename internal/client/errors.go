// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

// Input errors returned by command handlers. They are reported as warnings
// and never stop the loop.
var (
	ErrInvalidArgs         = errors.New("invalid args")
	ErrInvalidContactIndex = errors.New("invalid contact index")
	ErrInvalidRequestIndex = errors.New("invalid request index")
	ErrInvalidFriendIndex  = errors.New("invalid friend contact index")
	ErrInvalidGroupIndex   = errors.New("invalid group contact index")
	ErrNotTalking          = errors.New("not talking to anyone")
)
