// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-minichat/internal/utils"
)

// getServerVersion answers GET /api/v1/version. No authentication is
// required so clients can check the relay before they hold a key.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, version, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing response")
	}
}
