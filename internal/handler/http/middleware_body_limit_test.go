// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLimitBody_DeclaredLengthTooLarge(t *testing.T) {
	h, m := newTestHandler(t, WithMaxBodyBytes(16))
	m.expectAuth()

	rec := serve(h.Init(), authedRequest(http.MethodPost, envelopesPath, `{"envelopes":[{"id":"0195f3a0"}]}`))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, ErrBodyTooLarge.Error(), decodeError(t, rec))
}

func TestLimitBody_StreamedBodyTooLarge(t *testing.T) {
	h, m := newTestHandler(t, WithMaxBodyBytes(16))
	m.expectAuth()

	req := authedRequest(http.MethodPost, presencePath, `{"mailboxes":["aaaaaaaaaaaaaaaaaaaa"]}`)
	req.ContentLength = -1

	rec := serve(h.Init(), req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestLimitBody_WithinLimit(t *testing.T) {
	h, m := newTestHandler(t, WithMaxBodyBytes(64))
	m.expectAuth()
	m.presence.EXPECT().LastSeen(gomock.Any(), []string{"bob"}).Return(nil, nil)

	rec := serve(h.Init(), authedRequest(http.MethodPost, presencePath, `{"mailboxes":["bob"]}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}
