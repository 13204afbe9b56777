// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-minichat/models"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"
)

const (
	addressRawSize = models.PublicKeySize + ed25519.PublicKeySize + 2
	// AddressSize is the length of an address in hex characters.
	AddressSize = addressRawSize * 2
)

// Identity is the key material of the local node: an X25519 key pair that
// names the node and receives sealed payloads, and an ed25519 key pair that
// signs relay tokens.
type Identity struct {
	boxPublic [32]byte
	boxSecret [32]byte
	signKey   ed25519.PrivateKey
}

// NewIdentity generates fresh keys from r, or from crypto/rand when r is nil.
func NewIdentity(r io.Reader) (*Identity, error) {
	if r == nil {
		r = rand.Reader
	}

	pub, sec, err := box.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("generate box key: %w", err)
	}

	_, signKey, err := ed25519.GenerateKey(r)
	if err != nil {
		return nil, fmt.Errorf("generate sign key: %w", err)
	}

	return &Identity{boxPublic: *pub, boxSecret: *sec, signKey: signKey}, nil
}

// RestoreIdentity rebuilds an identity from a persisted box secret key and
// ed25519 seed.
func RestoreIdentity(boxSecret, signSeed []byte) (*Identity, error) {
	if len(boxSecret) != 32 || len(signSeed) != ed25519.SeedSize {
		return nil, ErrInvalidKey
	}

	id := &Identity{signKey: ed25519.NewKeyFromSeed(signSeed)}
	copy(id.boxSecret[:], boxSecret)

	pub, err := curve25519.X25519(id.boxSecret[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("derive box public key: %w", err)
	}
	copy(id.boxPublic[:], pub)

	return id, nil
}

// PublicKey returns the node's public key.
func (id *Identity) PublicKey() models.PublicKey {
	return models.PublicKey(id.boxPublic)
}

// BoxSecret returns a copy of the X25519 secret key for persistence.
func (id *Identity) BoxSecret() []byte {
	return append([]byte(nil), id.boxSecret[:]...)
}

// SignSeed returns the ed25519 seed for persistence.
func (id *Identity) SignSeed() []byte {
	return id.signKey.Seed()
}

// SignKey returns the ed25519 private key.
func (id *Identity) SignKey() ed25519.PrivateKey {
	return id.signKey
}

// SignPublic returns the ed25519 public key.
func (id *Identity) SignPublic() ed25519.PublicKey {
	return id.signKey.Public().(ed25519.PublicKey)
}

// Address returns the shareable address: hex(box public key ‖ sign public
// key ‖ checksum).
func (id *Identity) Address() string {
	raw := make([]byte, 0, addressRawSize)
	raw = append(raw, id.boxPublic[:]...)
	raw = append(raw, id.SignPublic()...)
	raw = binary.BigEndian.AppendUint16(raw, checksum(raw))
	return strings.ToUpper(hex.EncodeToString(raw))
}

// ParseAddress validates an address and returns the public key and signing
// key it carries.
func ParseAddress(address string) (models.PublicKey, ed25519.PublicKey, error) {
	var pk models.PublicKey

	address = strings.TrimSpace(address)
	if len(address) != AddressSize {
		return pk, nil, ErrAddressLength
	}

	raw, err := hex.DecodeString(address)
	if err != nil {
		return pk, nil, ErrAddressEncoding
	}

	body, sum := raw[:addressRawSize-2], binary.BigEndian.Uint16(raw[addressRawSize-2:])
	if checksum(body) != sum {
		return pk, nil, ErrAddressChecksum
	}

	copy(pk[:], body[:models.PublicKeySize])
	signPub := ed25519.PublicKey(append([]byte(nil), body[models.PublicKeySize:]...))

	return pk, signPub, nil
}

// checksum xors the input as a sequence of big-endian 16-bit words.
func checksum(b []byte) uint16 {
	var sum uint16
	for i := 0; i+1 < len(b); i += 2 {
		sum ^= binary.BigEndian.Uint16(b[i:])
	}
	return sum
}
