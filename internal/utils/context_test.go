// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestMailboxCtxKey(t *testing.T) {
	if MailboxCtxKey.String() != "mailbox" {
		t.Errorf("expected 'mailbox', got '%s'", MailboxCtxKey.String())
	}
}

func TestGetMailboxFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), MailboxCtxKey, "ab12")

	mailbox, ok := GetMailboxFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if mailbox != "ab12" {
		t.Errorf("expected mailbox=ab12, got %s", mailbox)
	}
}

func TestGetMailboxFromContext_Missing(t *testing.T) {
	if _, ok := GetMailboxFromContext(context.Background()); ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetMailboxFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), MailboxCtxKey, int64(42))

	if _, ok := GetMailboxFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetMailboxFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), MailboxCtxKey, "")

	if _, ok := GetMailboxFromContext(ctx); ok {
		t.Fatal("expected ok=false for empty mailbox, got true")
	}
}
