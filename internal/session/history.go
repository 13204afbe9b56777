// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "container/list"

// History is the chat history of one session. Every entry is a fully rendered
// line.
//
// New entries go to the front of the list, so the back is the oldest entry.
type History struct {
	l *list.List
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{l: list.New()}
}

// Push records a rendered message as the newest entry.
func (h *History) Push(msg string) {
	h.lazyInit()
	h.l.PushFront(msg)
}

// Read returns at most n entries starting from the oldest one and moving
// toward newer entries. With more than n entries stored, the newest ones are
// not returned.
func (h *History) Read(n int) []string {
	if h.l == nil || n <= 0 {
		return nil
	}

	out := make([]string, 0, min(n, h.l.Len()))
	for e := h.l.Back(); e != nil && len(out) < n; e = e.Prev() {
		out = append(out, e.Value.(string))
	}
	return out
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	if h.l == nil {
		return 0
	}
	return h.l.Len()
}

// Clear drops every entry.
func (h *History) Clear() {
	if h.l != nil {
		h.l.Init()
	}
}

func (h *History) lazyInit() {
	if h.l == nil {
		h.l = list.New()
	}
}
