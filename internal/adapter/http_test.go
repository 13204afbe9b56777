// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "header.payload.signature"

// newTestAdapter creates an httpRelayAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpRelayAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	tokens := func() (string, error) { return testToken, nil }

	a, err := NewHTTPRelayAdapter(adapterCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpRelayAdapter)
}

func TestNewHTTPRelayAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPRelayAdapter(config.ClientAdapter{HTTPAddress: "  "}, nil, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare host", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: "https://relay.example.com/", want: "https://relay.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme only", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── PostEnvelopes ─────────────────────────────────────────────────────────────

func TestPostEnvelopes_Success(t *testing.T) {
	envs := []models.Envelope{{ID: "1", To: "aa", Kind: models.EnvelopeMessage, Payload: []byte("x")}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/envelopes", r.URL.Path)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		var body models.PostEnvelopesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, envs[0].ID, body.Envelopes[0].ID)
		assert.Equal(t, envs[0].Payload, body.Envelopes[0].Payload)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.PostEnvelopes(context.Background(), envs))
}

func TestPostEnvelopes_EmptyBatchSkipsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.PostEnvelopes(context.Background(), nil))
	assert.False(t, called)
}

func TestPostEnvelopes_TokenSourceFails(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	a.tokens = func() (string, error) { return "", assert.AnError }

	err := a.PostEnvelopes(context.Background(), []models.Envelope{{ID: "1"}})
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPostEnvelopes_ErrorStatuses(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusRequestEntityTooLarge, ErrPayloadTooLarge},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			err := a.PostEnvelopes(context.Background(), []models.Envelope{{ID: "1"}})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestPostEnvelopes_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.PostEnvelopes(context.Background(), []models.Envelope{{ID: "1"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestPostEnvelopes_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	err := a.PostEnvelopes(context.Background(), []models.Envelope{{ID: "1"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "post envelopes request")
}

// ── FetchEnvelopes ────────────────────────────────────────────────────────────

func TestFetchEnvelopes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/envelopes", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.FetchEnvelopesResponse{Envelopes: []models.Envelope{
			{ID: "a", From: "ff", Kind: models.EnvelopeProfile},
			{ID: "b", From: "ff", Kind: models.EnvelopeMessage},
		}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchEnvelopes(context.Background(), 25)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, models.EnvelopeMessage, got[1].Kind)
}

func TestFetchEnvelopes_NoLimitParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"envelopes":[]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchEnvelopes(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFetchEnvelopes_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchEnvelopes(context.Background(), 10)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

// ── Presence ──────────────────────────────────────────────────────────────────

func TestPresence_Success(t *testing.T) {
	seen := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/presence", r.URL.Path)

		var body models.PresenceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"aa", "bb"}, body.Mailboxes)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PresenceResponse{LastSeen: map[string]time.Time{"aa": seen}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Presence(context.Background(), []string{"aa", "bb"})

	require.NoError(t, err)
	assert.True(t, seen.Equal(got["aa"]))
	_, ok := got["bb"]
	assert.False(t, ok)
}

func TestPresence_NilMapBecomesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Presence(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, got)
}

// ── Version ───────────────────────────────────────────────────────────────────

func TestVersion_NoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"v1.2.3","date":"2026-01-01","commit":"abc"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.VersionResponse{Version: "v1.2.3", Date: "2026-01-01", Commit: "abc"}, got)
}
