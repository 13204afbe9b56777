// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is the claim set of the bearer token a client presents to
// the relay.
//
// The token is self-signed with the client's ed25519 key. Subject holds the
// client's mailbox (hex box public key) and SignKey the hex ed25519 public key
// that verifies the signature. The relay binds a subject to the first
// SignKey it sees, so a second key claiming the same mailbox is rejected.
type IdentityClaims struct {
	// RegisteredClaims provides the standard JWT claim set
	// (sub, exp, iat, iss, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignKey is the hex encoded ed25519 public key of the client.
	SignKey string `json:"sign_key"`
}

// Mailbox returns the subject claim.
func (c *IdentityClaims) Mailbox() string {
	return c.Subject
}
