// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"testing"

	"github.com/MKhiriev/go-minichat/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestIDs(q *Requests) []uint32 {
	var ids []uint32
	for _, r := range q.List() {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestRequests_IDsAreDense(t *testing.T) {
	q := NewRequests()

	first := q.Enqueue("hi", FriendPayload{})
	second := q.Enqueue("From bob", GroupPayload{FriendNum: 2, Cookie: []byte("c")})

	assert.Equal(t, uint32(1), first.ID)
	assert.Equal(t, first.ID+1, second.ID)
	assert.Equal(t, []uint32{2, 1}, requestIDs(q))
}

func TestRequests_DenyFirstKeepsSecond(t *testing.T) {
	q := NewRequests()
	first := q.Enqueue("a", FriendPayload{})
	second := q.Enqueue("b", FriendPayload{})

	got, ok := q.Take(first.ID)
	require.True(t, ok)
	assert.Same(t, first, got)

	require.Equal(t, 1, q.Len())
	assert.Equal(t, uint32(2), q.List()[0].ID)
	assert.Same(t, second, q.List()[0])
}

func TestRequests_GapsAreNotReused(t *testing.T) {
	q := NewRequests()
	q.Enqueue("a", FriendPayload{})
	q.Enqueue("b", FriendPayload{})
	q.Enqueue("c", FriendPayload{})

	_, ok := q.Take(2)
	require.True(t, ok)

	d := q.Enqueue("d", FriendPayload{})
	assert.Equal(t, uint32(4), d.ID)

	if diff := cmp.Diff([]uint32{4, 3, 1}, requestIDs(q)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRequests_TakeMissing(t *testing.T) {
	q := NewRequests()
	q.Enqueue("a", FriendPayload{})

	_, ok := q.Take(42)
	assert.False(t, ok)
	assert.Equal(t, 1, q.Len())
}

func TestRequest_KindLabel(t *testing.T) {
	var pk models.PublicKey
	pk[0] = 1

	friend := &Request{Payload: FriendPayload{PublicKey: pk}}
	group := &Request{Payload: GroupPayload{FriendNum: 1}}

	assert.True(t, friend.IsFriendRequest())
	assert.Equal(t, "FRIEND", friend.KindLabel())
	assert.False(t, group.IsFriendRequest())
	assert.Equal(t, "GROUP", group.KindLabel())
}
