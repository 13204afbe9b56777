// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, identity token
// generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// MailboxCtxKey is the key used to store the authenticated mailbox in the
// context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.MailboxCtxKey, "ab12...")
var MailboxCtxKey = contextKey("mailbox")

// GetMailboxFromContext retrieves the authenticated mailbox from the context.
//
// Returns the mailbox and an ok flag:
//   - ok == true  - value is found, has the string type and is not empty
//   - ok == false - value is missing, empty or has an unexpected type
func GetMailboxFromContext(ctx context.Context) (string, bool) {
	mailbox, ok := ctx.Value(MailboxCtxKey).(string)
	return mailbox, ok && mailbox != ""
}
