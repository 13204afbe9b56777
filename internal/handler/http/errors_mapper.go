// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-minichat/internal/app"
	"github.com/MKhiriev/go-minichat/internal/service"
	"github.com/MKhiriev/go-minichat/internal/store"
	"github.com/MKhiriev/go-minichat/internal/utils"
)

type errorMapping struct {
	target error
	status int
	msg    string
}

var errorMappings = []errorMapping{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error()},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ErrInvalidAuthorizationHeader.Error()},
	{ErrInvalidLimit, http.StatusBadRequest, ErrInvalidLimit.Error()},
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge, ErrBodyTooLarge.Error()},
	{ErrNoMailboxInContext, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNoEnvelopesProvided, http.StatusBadRequest, app.MsgNoEnvelopesProvided},
	{service.ErrNoMailboxProvided, http.StatusBadRequest, app.MsgNoMailboxProvided},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrIdentityMismatch, http.StatusForbidden, app.MsgIdentityMismatch},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgVersionIsNotSpecified},

	{store.ErrIdentityMismatch, http.StatusForbidden, app.MsgIdentityMismatch},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

// statusFromError returns the HTTP status and public message for err.
// Unknown errors are reported as 500 without leaking their text.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the matching status.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, msg := statusFromError(err)

	log := h.requestLogger(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Send()
	} else {
		log.Debug().Err(err).Str("func", funcName).Int("status", status).Send()
	}

	utils.WriteError(w, msg, status)
}
