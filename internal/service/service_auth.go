// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/store"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
)

// authService is the concrete implementation of AuthService.
//
// Clients sign their own tokens with an ed25519 key carried in the token.
// The first token seen for a mailbox binds that key to it; later tokens for
// the same mailbox must carry the same key.
type authService struct {
	// identities stores the mailbox to signing key bindings.
	identities store.IdentityRepository

	// tokenIssuer is the "iss" claim every token must carry.
	tokenIssuer string

	// tokenLeeway is the clock skew tolerated on expiry checks.
	tokenLeeway time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService with the token parameters from
// cfg.
func NewAuthService(identities store.IdentityRepository, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		identities:  identities,
		tokenIssuer: cfg.TokenIssuer,
		tokenLeeway: cfg.TokenLeeway,
		logger:      logger,
	}
}

// Authenticate returns the mailbox the token proves ownership of.
//
// Returns:
//   - ErrTokenIsExpiredOrInvalid if the token fails validation or its
//     subject is not a mailbox name.
//   - ErrIdentityMismatch if the mailbox is bound to another key.
func (a *authService) Authenticate(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ValidateIdentityToken(token, a.tokenIssuer, a.tokenLeeway)
	if err != nil {
		log.Debug().Err(err).Str("func", "*authService.Authenticate").Msg("token rejected")
		return "", fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	pk, err := models.ParsePublicKey(claims.Subject)
	if err != nil || pk.Mailbox() != claims.Subject {
		return "", fmt.Errorf("%w: subject is not a mailbox", ErrTokenIsExpiredOrInvalid)
	}

	if err = a.identities.Bind(ctx, claims.Subject, claims.SignKey); err != nil {
		if errors.Is(err, store.ErrIdentityMismatch) {
			log.Warn().Str("func", "*authService.Authenticate").Str("mailbox", claims.Subject).Msg("signing key mismatch")
			return "", ErrIdentityMismatch
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("error binding identity")
		return "", fmt.Errorf("bind identity: %w", err)
	}

	return claims.Subject, nil
}
