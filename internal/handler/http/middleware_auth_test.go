// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-minichat/internal/app"
	"github.com/MKhiriev/go-minichat/internal/service"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		authErr    error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "no header",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "missing token",
			header:     "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    ErrInvalidAuthorizationHeader.Error(),
		},
		{
			name:       "expired token",
			header:     "Bearer " + testToken,
			authErr:    fmt.Errorf("%w: token has expired", service.ErrTokenIsExpiredOrInvalid),
			wantStatus: http.StatusUnauthorized,
			wantMsg:    app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:       "foreign key",
			header:     "Bearer " + testToken,
			authErr:    service.ErrIdentityMismatch,
			wantStatus: http.StatusForbidden,
			wantMsg:    app.MsgIdentityMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.authErr != nil {
				m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return("", tt.authErr)
			}

			called := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := serve(h.auth(next), req)

			assert.False(t, called)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec))
		})
	}
}

func TestAuth_StoresMailboxAndTouchesPresence(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectAuth()

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		got, ok = utils.GetMailboxFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	})

	rec := serve(h.auth(next), authedRequest(http.MethodGet, "/", ""))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testMailbox, got)
}

func TestAuth_PresenceFailureDoesNotReject(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Authenticate(gomock.Any(), testToken).Return(testMailbox, nil)
	m.presence.EXPECT().Touch(gomock.Any(), testMailbox).Return(errors.New("db down"))

	called := false
	rec := serve(h.auth(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })),
		authedRequest(http.MethodGet, "/", ""))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "bearer abc", want: "abc"},
		{header: "", wantErr: ErrEmptyAuthorizationHeader},
		{header: "Bearer ", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Token abc", wantErr: ErrInvalidAuthorizationHeader},
		{header: "Bearer a b", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		got, err := bearerToken(tt.header)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.header)
			continue
		}
		require.NoError(t, err, tt.header)
		assert.Equal(t, tt.want, got)
	}
}
