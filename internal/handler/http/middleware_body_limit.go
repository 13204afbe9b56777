// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// limitBody rejects requests whose declared length exceeds the limit and
// caps the body reader for the rest, so that handlers see
// [http.MaxBytesError] while decoding.
func (h *Handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > h.maxBodyBytes {
			h.writeError(w, r, "*Handler.limitBody", ErrBodyTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}
