// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_AddressRoundTrip(t *testing.T) {
	id, err := NewIdentity(nil)
	require.NoError(t, err)

	addr := id.Address()
	assert.Len(t, addr, AddressSize)
	assert.Equal(t, strings.ToUpper(addr), addr)

	pk, signPub, err := ParseAddress(addr)
	require.NoError(t, err)
	assert.Equal(t, id.PublicKey(), pk)
	assert.Equal(t, id.SignPublic(), signPub)

	// Lower case is accepted too.
	_, _, err = ParseAddress(strings.ToLower(addr))
	require.NoError(t, err)
}

func TestParseAddress_Errors(t *testing.T) {
	id, err := NewIdentity(nil)
	require.NoError(t, err)
	addr := id.Address()

	_, _, err = ParseAddress(addr[:10])
	assert.ErrorIs(t, err, ErrAddressLength)

	_, _, err = ParseAddress("Z" + addr[1:])
	assert.ErrorIs(t, err, ErrAddressEncoding)

	flipped := []byte(addr)
	if flipped[0] == '0' {
		flipped[0] = '1'
	} else {
		flipped[0] = '0'
	}
	_, _, err = ParseAddress(string(flipped))
	assert.ErrorIs(t, err, ErrAddressChecksum)
}

func TestRestoreIdentity(t *testing.T) {
	id, err := NewIdentity(nil)
	require.NoError(t, err)

	restored, err := RestoreIdentity(id.BoxSecret(), id.SignSeed())
	require.NoError(t, err)

	assert.Equal(t, id.PublicKey(), restored.PublicKey())
	assert.Equal(t, id.Address(), restored.Address())

	_, err = RestoreIdentity([]byte{1, 2}, id.SignSeed())
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestIdentity_SealOpen(t *testing.T) {
	alice, err := NewIdentity(nil)
	require.NoError(t, err)
	bob, err := NewIdentity(nil)
	require.NoError(t, err)
	eve, err := NewIdentity(nil)
	require.NoError(t, err)

	nonce, sealed, err := alice.Seal([]byte("hi bob"), bob.PublicKey())
	require.NoError(t, err)
	assert.Len(t, nonce, NonceSize)

	plain, err := bob.Open(sealed, nonce, alice.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, "hi bob", string(plain))

	_, err = eve.Open(sealed, nonce, alice.PublicKey())
	assert.ErrorIs(t, err, ErrOpenFailed)

	_, err = bob.Open(sealed, nonce[:5], alice.PublicKey())
	assert.ErrorIs(t, err, ErrBadNonce)
}
