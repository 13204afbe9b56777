// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
)

// presence reports which of the requested mailboxes called the relay
// recently. The caller itself has already been marked seen by the auth
// middleware.
func (h *Handler) presence(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.presence"

	var body models.PresenceRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, funcName, err)
		return
	}

	lastSeen, err := h.services.PresenceService.LastSeen(r.Context(), body.Mailboxes)
	if err != nil {
		h.writeError(w, r, funcName, err)
		return
	}
	if lastSeen == nil {
		lastSeen = map[string]time.Time{}
	}

	if _, err = utils.WriteJSON(w, models.PresenceResponse{LastSeen: lastSeen}, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}
