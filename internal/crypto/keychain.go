// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const saltSize = 16

// saveDataMagic prefixes every sealed savedata blob.
var saveDataMagic = []byte("MCSD1")

// saveDataCipher is the private implementation of [SaveDataCipher].
type saveDataCipher struct {
	passphrase []byte

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewSaveDataCipher constructs a [SaveDataCipher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSaveDataCipher(passphrase string) SaveDataCipher {
	return &saveDataCipher{
		passphrase:   []byte(passphrase),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

func (c *saveDataCipher) deriveKey(salt []byte) []byte {
	return argon2.IDKey(c.passphrase, salt, c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)
}

func (c *saveDataCipher) gcm(salt []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.deriveKey(salt))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// Seal implements [SaveDataCipher].
func (c *saveDataCipher) Seal(plain []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := c.gcm(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(saveDataMagic)+saltSize+len(nonce)+len(plain)+gcm.Overhead())
	blob = append(blob, saveDataMagic...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	// The magic is bound as additional data so a header swap fails to open.
	return gcm.Seal(blob, nonce, plain, saveDataMagic), nil
}

// Open implements [SaveDataCipher].
func (c *saveDataCipher) Open(blob []byte) ([]byte, error) {
	if !c.IsSealed(blob) {
		return nil, ErrNotSealed
	}
	rest := blob[len(saveDataMagic):]
	if len(rest) < saltSize {
		return nil, ErrWrongPassphrase
	}

	salt, rest := rest[:saltSize], rest[saltSize:]
	gcm, err := c.gcm(salt)
	if err != nil {
		return nil, err
	}

	if len(rest) < gcm.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	plain, err := gcm.Open(nil, nonce, ciphertext, saveDataMagic)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrongPassphrase, err)
	}
	return plain, nil
}

// IsSealed implements [SaveDataCipher].
func (c *saveDataCipher) IsSealed(data []byte) bool {
	return bytes.HasPrefix(data, saveDataMagic)
}

// LooksSealed reports whether data carries the sealed savedata header. It
// needs no passphrase.
func LooksSealed(data []byte) bool {
	return bytes.HasPrefix(data, saveDataMagic)
}
