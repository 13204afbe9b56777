// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
	"github.com/go-resty/resty/v2"
)

const (
	envelopesPath = "/api/v1/envelopes"
	presencePath  = "/api/v1/presence"
	versionPath   = "/api/v1/version"
)

type httpRelayAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPRelayAdapter constructs an HTTP/REST implementation of
// [RelayAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. tokens is consulted once per
// authenticated request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPRelayAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (RelayAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpRelayAdapter{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PostEnvelopes implements [RelayAdapter]. It POSTs the batch to
// POST /api/v1/envelopes. An empty batch is not sent.
func (h *httpRelayAdapter) PostEnvelopes(ctx context.Context, envelopes []models.Envelope) error {
	if len(envelopes) == 0 {
		return nil
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetBody(models.PostEnvelopesRequest{Envelopes: envelopes}).
		Post(envelopesPath)
	if err != nil {
		return fmt.Errorf("post envelopes request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "httpRelayAdapter.PostEnvelopes").Err(err).Int("count", len(envelopes)).Send()
		return err
	}
	return nil
}

// FetchEnvelopes implements [RelayAdapter]. It GETs
// GET /api/v1/envelopes?limit=N and decodes the popped envelopes.
func (h *httpRelayAdapter) FetchEnvelopes(ctx context.Context, limit int) ([]models.Envelope, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.FetchEnvelopesResponse
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.SetResult(&result).Get(envelopesPath)
	if err != nil {
		return nil, fmt.Errorf("fetch envelopes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Envelopes, nil
}

// Presence implements [RelayAdapter]. It POSTs the mailbox list to
// POST /api/v1/presence. Calling it also marks the caller as seen.
func (h *httpRelayAdapter) Presence(ctx context.Context, mailboxes []string) (map[string]time.Time, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.PresenceResponse
	resp, err := req.
		SetBody(models.PresenceRequest{Mailboxes: mailboxes}).
		SetResult(&result).
		Post(presencePath)
	if err != nil {
		return nil, fmt.Errorf("presence request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.LastSeen == nil {
		result.LastSeen = map[string]time.Time{}
	}
	return result.LastSeen, nil
}

// Version implements [RelayAdapter]. It GETs GET /api/v1/version.
func (h *httpRelayAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var result models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get(versionPath)
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return result, nil
}

func (h *httpRelayAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)
	if h.tokens == nil {
		return req, nil
	}

	token, err := h.tokens()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoToken, err)
	}
	if token != "" {
		req.SetAuthToken(token)
	}
	return req, nil
}
