// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-minichat/internal/service"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
)

// postEnvelopes queues a batch from the authenticated sender and answers
// 202 Accepted. Delivery happens when the recipients fetch.
func (h *Handler) postEnvelopes(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.postEnvelopes"

	mailbox, ok := utils.GetMailboxFromContext(r.Context())
	if !ok {
		h.writeError(w, r, funcName, ErrNoMailboxInContext)
		return
	}

	var body models.PostEnvelopesRequest
	if err := decodeBody(r, &body); err != nil {
		h.writeError(w, r, funcName, err)
		return
	}

	if err := h.services.EnvelopeService.Post(r.Context(), mailbox, body.Envelopes); err != nil {
		h.writeError(w, r, funcName, err)
		return
	}

	h.requestLogger(r).Debug().Str("func", funcName).Str("mailbox", mailbox).Int("count", len(body.Envelopes)).Msg("envelopes queued")
	w.WriteHeader(http.StatusAccepted)
}

// fetchEnvelopes pops envelopes addressed to the caller. The optional
// "limit" query parameter bounds the batch; zero means the relay maximum.
func (h *Handler) fetchEnvelopes(w http.ResponseWriter, r *http.Request) {
	const funcName = "*Handler.fetchEnvelopes"

	mailbox, ok := utils.GetMailboxFromContext(r.Context())
	if !ok {
		h.writeError(w, r, funcName, ErrNoMailboxInContext)
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		h.writeError(w, r, funcName, err)
		return
	}

	envs, err := h.services.EnvelopeService.Fetch(r.Context(), mailbox, limit)
	if err != nil {
		h.writeError(w, r, funcName, err)
		return
	}
	if envs == nil {
		envs = []models.Envelope{}
	}

	if _, err = utils.WriteJSON(w, models.FetchEnvelopesResponse{Envelopes: envs}, http.StatusOK); err != nil {
		h.requestLogger(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, raw)
	}
	return limit, nil
}

// decodeBody reads a JSON request body into dst. Oversized bodies yield
// ErrBodyTooLarge, anything unparsable yields service.ErrInvalidDataProvided.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit %d", ErrBodyTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}
