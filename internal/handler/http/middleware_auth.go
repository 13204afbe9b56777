// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/rs/zerolog"
)

// auth authenticates the bearer identity token, stores the mailbox in the
// request context under [utils.MailboxCtxKey] and marks the mailbox as seen.
//
// Missing or malformed headers and rejected tokens answer 401, a token
// signed by a key other than the one bound to its mailbox answers 403.
// A failing presence update is logged and does not reject the request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const funcName = "*Handler.auth"

		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, funcName, err)
			return
		}

		ctx := r.Context()
		mailbox, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			h.writeError(w, r, funcName, err)
			return
		}

		if err = h.services.PresenceService.Touch(ctx, mailbox); err != nil {
			h.requestLogger(r).Err(err).Str("func", funcName).Str("mailbox", mailbox).Msg("error updating presence")
		}

		log := h.requestLogger(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("mailbox", mailbox)
		})

		ctx = context.WithValue(log.WithContext(ctx), utils.MailboxCtxKey, mailbox)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}
	token, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}
