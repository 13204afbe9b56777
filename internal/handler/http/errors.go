// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors raised while reading a request before any service is called.
var (
	// ErrEmptyAuthorizationHeader means the request carried no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoMailboxInContext means an authenticated route ran without the auth
	// middleware.
	ErrNoMailboxInContext = errors.New("no authenticated mailbox in context")

	ErrInvalidLimit = errors.New("limit must be a non-negative integer")

	// ErrBodyTooLarge means the request body exceeded the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
