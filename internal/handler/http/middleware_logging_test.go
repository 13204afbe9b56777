// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantLevel string
		wantCode  int
		wantSize  int
	}{
		{
			name: "ok with body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("hello"))
			},
			wantLevel: "info",
			wantCode:  http.StatusOK,
			wantSize:  5,
		},
		{
			name:      "nothing written",
			handler:   func(http.ResponseWriter, *http.Request) {},
			wantLevel: "info",
			wantCode:  http.StatusOK,
		},
		{
			name: "accepted",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusAccepted)
			},
			wantLevel: "info",
			wantCode:  http.StatusAccepted,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "oops", http.StatusBadGateway)
			},
			wantLevel: "error",
			wantCode:  http.StatusBadGateway,
			wantSize:  len("oops\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := bufferedHandler(&buf)

			rec := serve(h.withLogging(tt.handler), httptest.NewRequest(http.MethodPost, "/api/v1/envelopes?x=1", nil))
			assert.Equal(t, tt.wantCode, rec.Code)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, http.MethodPost, line["method"])
			assert.Equal(t, "/api/v1/envelopes?x=1", line["uri"])
			assert.EqualValues(t, tt.wantCode, line["status"])
			assert.EqualValues(t, tt.wantSize, line["size"])
			assert.Contains(t, line, "duration")
		})
	}
}

func TestWithLogging_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	h := bufferedHandler(&buf)

	chain := h.withTraceID(h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})))
	rec := serve(chain, httptest.NewRequest(http.MethodGet, "/", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, rec.Header().Get(traceIDHeader), line["trace_id"])
}
