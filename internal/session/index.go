// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags the two kinds of session.
type Kind uint32

const (
	// KindContact is a direct conversation with one contact.
	KindContact Kind = 0
	// KindGroup is a group conversation.
	KindGroup Kind = 1
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindContact:
		return "contact"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Index is a combined session index: num*2 + kind. It is wider than a
// session number, so every (num, kind) pair encodes below [NoSession].
type Index uint64

// NoSession is the reserved index meaning "command mode, talking to nobody".
const NoSession Index = math.MaxUint64

// maxIndex is the largest index a uint32 session number can produce.
const maxIndex = uint64(math.MaxUint32)*2 + 1

// Encode builds the combined index of session num of the given kind.
func Encode(num uint32, kind Kind) Index {
	return Index(uint64(num)*2 + uint64(kind))
}

// ParseIndex parses a user-supplied decimal combined index.
func ParseIndex(s string) (Index, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NoSession, err
	}
	if v > maxIndex {
		return NoSession, fmt.Errorf("parsing %q: %w", s, strconv.ErrRange)
	}
	return Index(v), nil
}

// Num returns the numeric id part of the index.
func (i Index) Num() uint32 {
	return uint32(uint64(i) / 2)
}

// Kind returns the kind part of the index.
func (i Index) Kind() Kind {
	return Kind(uint64(i) % 2)
}

// Decode splits the index into its numeric id and kind.
func (i Index) Decode() (uint32, Kind) {
	return i.Num(), i.Kind()
}

// Valid reports whether i refers to a session rather than [NoSession].
func (i Index) Valid() bool {
	return i != NoSession
}
