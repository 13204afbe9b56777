// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAddressLength is returned when an address is not 132 hex characters.
	ErrAddressLength = errors.New("address has wrong length")
	// ErrAddressEncoding is returned when an address is not valid hex.
	ErrAddressEncoding = errors.New("address is not valid hex")
	// ErrAddressChecksum is returned when an address checksum does not match.
	ErrAddressChecksum = errors.New("address checksum mismatch")

	// ErrOpenFailed is returned when a sealed payload cannot be opened with
	// the given keys.
	ErrOpenFailed = errors.New("cannot open sealed payload")
	// ErrBadNonce is returned when a nonce is not 24 bytes long.
	ErrBadNonce = errors.New("bad nonce length")

	// ErrWrongPassphrase is returned when a savedata blob fails
	// authentication.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted savedata")
	// ErrNotSealed is returned when a blob lacks the savedata magic.
	ErrNotSealed = errors.New("savedata is not sealed")
	// ErrInvalidKey is returned when persisted key material is malformed.
	ErrInvalidKey = errors.New("invalid key material")
)
