// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared across minichat.
//
// The Msg* constants in the first block are written into relay HTTP
// response bodies. The second block holds the warnings and errors the
// interactive client prints on the terminal. Keeping them in one place keeps
// the wording consistent between the handlers, the client and their tests.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected relay-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when an identity token is
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgIdentityMismatch is returned when a mailbox is already bound to a
	// different signing key.
	MsgIdentityMismatch = "mailbox is bound to another identity"

	// MsgNoEnvelopesProvided is returned when a post request carries no
	// envelopes.
	MsgNoEnvelopesProvided = "no envelopes provided"

	// MsgNoMailboxProvided is returned when the caller's mailbox could not
	// be determined.
	MsgNoMailboxProvided = "no mailbox provided"

	// MsgVersionIsNotSpecified is returned by the version endpoint when the
	// binary was built without version information.
	MsgVersionIsNotSpecified = "app version is not specified"

	// MsgMethodNotAllowed is returned when the request method is not the one
	// the route serves.
	MsgMethodNotAllowed = "method not allowed"
)

// Client terminal messages.
const (
	MsgInvalidCommand      = "! Invalid command, use `/help` to get list of available commands."
	MsgWrongArity          = "Wrong number of cmd args"
	MsgInvalidArgs         = "Invalid args"
	MsgInvalidContactIndex = "^ Invalid contact index"
	MsgInvalidRequestIndex = "Invalid request index"
	MsgInvalidFriendIndex  = "Invalid friend contact index"
	MsgInvalidGroupIndex   = "! Invalid group contact index"
	MsgNotTalking          = "you are not talking to someone"

	// MsgStrayChat is printed when talk mode points at a session that no
	// longer exists.
	MsgStrayChat = "! You are not talking to someone. use `/go` to return to cmd mode"
)
