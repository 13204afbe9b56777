// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-minichat/models"
	"golang.org/x/crypto/nacl/box"
)

// NonceSize is the length of a box nonce.
const NonceSize = 24

// Seal encrypts plain for recipient and authenticates it as coming from id.
// It returns the random nonce and the ciphertext.
func (id *Identity) Seal(plain []byte, recipient models.PublicKey) (nonce, sealed []byte, err error) {
	var n [NonceSize]byte
	if _, err = io.ReadFull(rand.Reader, n[:]); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	peer := [32]byte(recipient)
	sealed = box.Seal(nil, plain, &n, &peer, &id.boxSecret)

	return n[:], sealed, nil
}

// Open decrypts a payload sent by sender to id.
func (id *Identity) Open(sealed, nonce []byte, sender models.PublicKey) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, ErrBadNonce
	}

	n := [NonceSize]byte(nonce)
	peer := [32]byte(sender)

	plain, ok := box.Open(nil, sealed, &n, &peer, &id.boxSecret)
	if !ok {
		return nil, ErrOpenFailed
	}
	return plain, nil
}
