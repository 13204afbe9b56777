// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEnvelopeID = errors.New("invalid envelope id")
	ErrInvalidMailbox    = errors.New("invalid mailbox")
	ErrInvalidKind       = errors.New("invalid envelope kind")
	ErrInvalidNonce      = errors.New("invalid nonce")
	ErrEmptyPayload      = errors.New("payload is required")
	ErrPayloadTooLarge   = errors.New("payload is too large")
	ErrEmptyEnvelopes    = errors.New("envelopes list cannot be empty")
	ErrTooManyEnvelopes  = errors.New("too many envelopes in one request")
	ErrEmptyMailboxes    = errors.New("mailboxes list cannot be empty")
	ErrTooManyMailboxes  = errors.New("too many mailboxes in one request")
)
