// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// SaveDataCipher protects the savedata file at rest.
//
// The key is derived from a user passphrase with Argon2id; the document is
// sealed with AES-256-GCM. A blob produced by Seal carries everything Open
// needs except the passphrase:
//
//	blob = magic ‖ salt ‖ nonce ‖ ciphertext
type SaveDataCipher interface {
	// Seal encrypts plain with a key derived from the passphrase and a fresh
	// random salt.
	Seal(plain []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. It returns [ErrWrongPassphrase]
	// when authentication fails.
	Open(blob []byte) ([]byte, error)

	// IsSealed reports whether data looks like a sealed blob rather than a
	// plain JSON document.
	IsSealed(data []byte) bool
}
