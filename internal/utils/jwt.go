// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-minichat/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// GenerateIdentityToken creates a self-signed EdDSA JWT that proves
// ownership of a mailbox to the relay.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the relay the token is meant for
//   - Subject   (sub): the mailbox (hex box public key)
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - ID        (jti): a random UUID so that two tokens never collide
//   - sign_key       : hex ed25519 public key verifying the signature
//
// Example usage:
//
//	token, err := utils.GenerateIdentityToken("minichat-relay", mailbox, time.Minute, key)
func GenerateIdentityToken(issuer, mailbox string, tokenDuration time.Duration, signKey ed25519.PrivateKey) (string, error) {
	if issuer == "" || mailbox == "" || tokenDuration <= 0 || len(signKey) != ed25519.PrivateKeySize {
		return "", errors.New("invalid params for generating identity token")
	}

	now := time.Now()
	claims := &models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   mailbox,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
		SignKey: hex.EncodeToString(signKey.Public().(ed25519.PublicKey)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(signKey)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing identity token: %w", err)
	}

	return signed, nil
}

// ValidateIdentityToken verifies a token produced by GenerateIdentityToken
// and returns its claims.
//
// Validation includes:
//   - Signing method is EdDSA
//   - Signature verifies against the sign_key claim
//   - Issuer (iss) matches tokenIssuer
//   - Expiration (exp) with the given leeway
//   - Subject (sub) is present
//
// Binding the mailbox to the signing key is left to the caller.
func ValidateIdentityToken(tokenString, tokenIssuer string, leeway time.Duration) (*models.IdentityClaims, error) {
	claims := &models.IdentityClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		c, ok := token.Claims.(*models.IdentityClaims)
		if !ok {
			return nil, errors.New("unexpected claims type")
		}
		raw, err := hex.DecodeString(c.SignKey)
		if err != nil || len(raw) != ed25519.PublicKeySize {
			return nil, errors.New("invalid sign_key claim")
		}
		return ed25519.PublicKey(raw), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
	)
	if err != nil {
		return nil, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return nil, errors.New("empty subject error")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
