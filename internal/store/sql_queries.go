// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	tableEnvelopes  = "envelopes"
	tableIdentities = "identities"
	tablePresence   = "presence"
)

var envelopeColumns = []string{"seq", "id", "to_id", "from_id", "kind", "nonce", "payload", "created_at"}

const (
	// trimMailbox keeps the newest maxPending rows of one recipient.
	trimMailbox = "seq IN (SELECT seq FROM envelopes WHERE to_id = ? ORDER BY seq ASC LIMIT ?)"

	upsertPresence = "ON CONFLICT (mailbox) DO UPDATE SET last_seen = excluded.last_seen"
)
