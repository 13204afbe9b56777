// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"errors"
	"strings"
)

// PublicKeySize is the size in bytes of a contact public key.
const PublicKeySize = 32

// ErrInvalidPublicKey is returned by [ParsePublicKey] when the input is not a
// hex string encoding exactly [PublicKeySize] bytes.
var ErrInvalidPublicKey = errors.New("invalid public key")

// PublicKey identifies a contact or group peer. It is the X25519 key used to
// seal envelopes addressed to that peer, and it doubles as the relay mailbox
// name.
type PublicKey [PublicKeySize]byte

// ParsePublicKey decodes a hex encoded public key (case-insensitive).
func ParsePublicKey(s string) (PublicKey, error) {
	var pk PublicKey

	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil || len(raw) != PublicKeySize {
		return pk, ErrInvalidPublicKey
	}
	copy(pk[:], raw)

	return pk, nil
}

// Hex returns the upper-case hex form used for display.
func (k PublicKey) Hex() string {
	return strings.ToUpper(hex.EncodeToString(k[:]))
}

// Mailbox returns the lower-case hex form used as the relay mailbox name.
func (k PublicKey) Mailbox() string {
	return hex.EncodeToString(k[:])
}

// IsZero reports whether the key is unset.
func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}

// String implements [fmt.Stringer].
func (k PublicKey) String() string {
	return k.Hex()
}

// MarshalText implements [encoding.TextMarshaler] so keys serialise as hex in
// JSON documents (savedata, envelope payloads).
func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.Mailbox()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *PublicKey) UnmarshalText(text []byte) error {
	pk, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}
