// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"slices"

	"github.com/MKhiriev/go-minichat/models"
)

// RequestPayload is the kind specific part of a [Request]: either
// [FriendPayload] or [GroupPayload].
type RequestPayload interface {
	isRequestPayload()
}

// FriendPayload is the payload of an inbound friend request.
type FriendPayload struct {
	PublicKey models.PublicKey
}

// GroupPayload is the payload of an inbound group invite.
type GroupPayload struct {
	FriendNum uint32
	Cookie    []byte
}

func (FriendPayload) isRequestPayload() {}
func (GroupPayload) isRequestPayload()  {}

// Request is one pending inbound request.
type Request struct {
	ID      uint32
	Message string
	Payload RequestPayload
}

// IsFriendRequest reports whether the request is a friend request.
func (r *Request) IsFriendRequest() bool {
	_, ok := r.Payload.(FriendPayload)
	return ok
}

// KindLabel returns the label shown when listing requests.
func (r *Request) KindLabel() string {
	if r.IsFriendRequest() {
		return "FRIEND"
	}
	return "GROUP"
}

// Requests is the queue of pending requests. New requests are listed first.
//
// A new request gets the id of the current head plus one (one when the queue
// is empty). Ids of queued requests never change; removing a request other
// than the head leaves a permanent gap.
type Requests struct {
	items []*Request
}

// NewRequests returns an empty queue.
func NewRequests() *Requests {
	return &Requests{}
}

// Enqueue adds a request in front of the queue and returns it.
func (q *Requests) Enqueue(message string, payload RequestPayload) *Request {
	var id uint32 = 1
	if len(q.items) > 0 {
		id = q.items[0].ID + 1
	}

	r := &Request{ID: id, Message: message, Payload: payload}
	q.items = slices.Insert(q.items, 0, r)
	return r
}

// List returns queued requests, newest first.
func (q *Requests) List() []*Request {
	return q.items
}

// Take removes the request with the given id and returns it.
func (q *Requests) Take(id uint32) (*Request, bool) {
	i := slices.IndexFunc(q.items, func(r *Request) bool { return r.ID == id })
	if i < 0 {
		return nil, false
	}

	r := q.items[i]
	q.items = slices.Delete(q.items, i, i+1)
	return r, true
}

// Len returns the number of queued requests.
func (q *Requests) Len() int {
	return len(q.items)
}
