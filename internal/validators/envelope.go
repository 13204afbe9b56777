// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-minichat/internal/crypto"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the sender-assigned envelope UUID.
	FieldID = "id"

	// FieldTo targets the recipient mailbox.
	FieldTo = "to"

	// FieldKind targets the envelope kind.
	FieldKind = "kind"

	// FieldNonce targets the box nonce.
	FieldNonce = "nonce"

	// FieldPayload targets the sealed payload.
	FieldPayload = "payload"

	// FieldEnvelopes targets the envelope list of a post request.
	FieldEnvelopes = "envelopes"

	// FieldMailboxes targets the mailbox list of a presence request.
	FieldMailboxes = "mailboxes"
)

const (
	// MaxPayloadSize bounds one sealed payload.
	MaxPayloadSize = 64 << 10

	// MaxEnvelopesPerRequest bounds one post request.
	MaxEnvelopesPerRequest = 256

	// MaxMailboxesPerRequest bounds one presence request.
	MaxMailboxesPerRequest = 1024
)

type EnvelopeValidator struct{}

func NewEnvelopeValidator() Validator {
	return &EnvelopeValidator{}
}

func (v *EnvelopeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Envelope:
		return v.validateEnvelope(ctx, value, fields...)
	case *models.Envelope:
		return v.validateEnvelope(ctx, *value, fields...)

	case models.PostEnvelopesRequest:
		return v.validatePostRequest(ctx, value, fields...)
	case *models.PostEnvelopesRequest:
		return v.validatePostRequest(ctx, *value, fields...)

	case models.PresenceRequest:
		return v.validatePresenceRequest(ctx, value, fields...)
	case *models.PresenceRequest:
		return v.validatePresenceRequest(ctx, *value, fields...)

	case string:
		if !IsMailbox(value) {
			return ErrInvalidMailbox
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

// IsMailbox reports whether s is a lower-case hex public key.
func IsMailbox(s string) bool {
	pk, err := models.ParsePublicKey(s)
	return err == nil && pk.Mailbox() == s
}

func (v *EnvelopeValidator) validateEnvelope(ctx context.Context, env models.Envelope, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTo, FieldKind, FieldNonce, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsUUID(env.ID) {
				return ErrInvalidEnvelopeID
			}
		case FieldTo:
			if !IsMailbox(env.To) {
				return ErrInvalidMailbox
			}
		case FieldKind:
			if !env.Kind.Valid() {
				return ErrInvalidKind
			}
		case FieldNonce:
			if len(env.Nonce) != crypto.NonceSize {
				return ErrInvalidNonce
			}
		case FieldPayload:
			if len(env.Payload) == 0 {
				return ErrEmptyPayload
			}
			if len(env.Payload) > MaxPayloadSize {
				return ErrPayloadTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EnvelopeValidator) validatePostRequest(ctx context.Context, request models.PostEnvelopesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEnvelopes}
	}

	for _, f := range fields {
		switch f {
		case FieldEnvelopes:
			if len(request.Envelopes) == 0 {
				return ErrEmptyEnvelopes
			}
			if len(request.Envelopes) > MaxEnvelopesPerRequest {
				return ErrTooManyEnvelopes
			}
			for i, env := range request.Envelopes {
				if err := v.validateEnvelope(ctx, env); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EnvelopeValidator) validatePresenceRequest(ctx context.Context, request models.PresenceRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMailboxes}
	}

	for _, f := range fields {
		switch f {
		case FieldMailboxes:
			if len(request.Mailboxes) == 0 {
				return ErrEmptyMailboxes
			}
			if len(request.Mailboxes) > MaxMailboxesPerRequest {
				return ErrTooManyMailboxes
			}
			for i, mailbox := range request.Mailboxes {
				if !IsMailbox(mailbox) {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidMailbox)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
