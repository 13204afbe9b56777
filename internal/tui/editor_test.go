// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedString(e *LineEditor, s string) (string, bool) {
	var (
		line string
		done bool
	)
	for i := 0; i < len(s); i++ {
		if l, ok := e.Feed(s[i]); ok {
			line, done = l, true
		}
	}
	return line, done
}

func TestLineEditor_InsertInMiddle(t *testing.T) {
	e := NewLineEditor(8)

	feedString(e, "ab")
	e.Feed(keyCtrlB)
	assert.Equal(t, 1, e.nbuf)
	assert.Equal(t, 1, e.nstack)

	e.Feed('X')
	assert.Equal(t, 2, e.nbuf)
	assert.Equal(t, 1, e.nstack)
	assert.Equal(t, "aXb", e.String())
	assert.Equal(t, "aX", e.Head())
	assert.Equal(t, "b", e.Tail())
}

func TestLineEditor_CommitJoinsHeadAndTail(t *testing.T) {
	e := NewLineEditor(DefaultLineCapacity)

	feedString(e, "helo")
	e.Feed(keyCtrlB)
	e.Feed(keyCtrlB)
	e.Feed('l')

	line, ok := e.Feed('\n')
	require.True(t, ok)
	assert.Equal(t, "hello\n", line)
	assert.Equal(t, 0, e.Len())
	assert.Equal(t, 0, e.Cursor())
}

func TestLineEditor_LeftRightIsNoop(t *testing.T) {
	e := NewLineEditor(16)
	feedString(e, "abcdef")
	e.Feed(keyCtrlB)
	e.Feed(keyCtrlB)

	head, tail, nbuf, nstack := e.Head(), e.Tail(), e.nbuf, e.nstack

	e.Feed(keyCtrlB)
	e.Feed(keyCtrlF)
	assert.Equal(t, head, e.Head())
	assert.Equal(t, tail, e.Tail())
	assert.Equal(t, nbuf, e.nbuf)
	assert.Equal(t, nstack, e.nstack)

	e.Feed(keyCtrlF)
	e.Feed(keyCtrlB)
	assert.Equal(t, head, e.Head())
	assert.Equal(t, tail, e.Tail())
}

func TestLineEditor_MoveAtBoundsIsNoop(t *testing.T) {
	e := NewLineEditor(8)

	e.Feed(keyCtrlB)
	e.Feed(keyCtrlF)
	assert.Equal(t, 0, e.Len())

	feedString(e, "ab")
	e.Feed(keyCtrlF)
	assert.Equal(t, 2, e.Cursor())
}

func TestLineEditor_CountInvariant(t *testing.T) {
	e := NewLineEditor(64)
	ops := "ab\x02c\x02\x02d\x06e\x01f\x05g"

	typed := 0
	for i := 0; i < len(ops); i++ {
		c := ops[i]
		if c >= 'a' && c <= 'z' {
			typed++
		}
		e.Feed(c)
		assert.Equal(t, typed, e.nbuf+e.nstack)
	}
	assert.Equal(t, "fdaecbg", e.String())
}

func TestLineEditor_FullBufferDropsInput(t *testing.T) {
	e := NewLineEditor(4)
	feedString(e, "abcd")
	e.Feed(keyCtrlB)
	e.Feed(keyCtrlB)

	before := string(e.buf)
	e.Feed('Z')

	assert.Equal(t, before, string(e.buf))
	assert.Equal(t, 2, e.nbuf)
	assert.Equal(t, 2, e.nstack)
	assert.Equal(t, "abcd", e.String())
}

func TestLineEditor_Deletion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "backspace", input: "abc\x08", want: "ab"},
		{name: "delete", input: "abc\x7f\x7f", want: "a"},
		{name: "backspace on empty", input: "\x7f", want: ""},
		{name: "ctrl-u keeps tail", input: "abcd\x02\x02\x15", want: "cd"},
		{name: "ctrl-k keeps head", input: "abcd\x02\x02\x0b", want: "ab"},
		{name: "ctrl-w drops word and blanks", input: "foo bar  \x17", want: "foo "},
		{name: "ctrl-w twice", input: "foo bar\x17\x17", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewLineEditor(32)
			feedString(e, tt.input)
			assert.Equal(t, tt.want, e.String())
		})
	}
}

func TestLineEditor_HomeEnd(t *testing.T) {
	e := NewLineEditor(16)
	feedString(e, "abc")

	e.Feed(keyCtrlA)
	assert.Equal(t, 0, e.Cursor())
	assert.Equal(t, "abc", e.Tail())

	e.Feed(keyCtrlE)
	assert.Equal(t, 3, e.Cursor())
	assert.Equal(t, "", e.Tail())
}

func TestLineEditor_ArrowKeys(t *testing.T) {
	e := NewLineEditor(16)
	feedString(e, "abc")

	feedString(e, "\x1b[D")
	assert.Equal(t, "ab", e.Head())
	assert.Equal(t, "c", e.Tail())

	feedString(e, "\x1b[D")
	feedString(e, "\x1b[C")
	assert.Equal(t, "ab", e.Head())
	assert.Equal(t, "abc", e.String())
}

func TestLineEditor_EscapeFallThrough(t *testing.T) {
	// Outside the three byte window 'D' is plain text.
	e := NewLineEditor(16)
	feedString(e, "\x1b[xD")
	assert.Equal(t, "[xD", e.String())

	// Any letter other than C or D leaves the bracket in place.
	e = NewLineEditor(16)
	feedString(e, "\x1b[A")
	assert.Equal(t, "[A", e.String())

	// Without a preceding ESC nothing is recognised.
	e = NewLineEditor(16)
	feedString(e, "[D")
	assert.Equal(t, "[D", e.String())
}

func TestLineEditor_Render(t *testing.T) {
	e := NewLineEditor(16)
	e.SetPrompt("> ")
	feedString(e, "hello")
	e.Feed(keyCtrlB)
	e.Feed(keyCtrlB)

	var buf bytes.Buffer
	require.NoError(t, e.Redraw(&buf))

	assert.Equal(t, "\r\x1b[2K> hello\x1b[2D", buf.String())
	assert.Equal(t, 3, e.nbuf, "redraw must not change state")
	assert.Equal(t, 2, e.nstack)
}

func TestLineEditor_RenderWideTail(t *testing.T) {
	e := NewLineEditor(16)
	e.SetPrompt("> ")
	feedString(e, "a世")
	for range len("世") {
		e.Feed(keyCtrlB)
	}

	assert.Equal(t, "世", e.Tail())
	assert.Equal(t, "\r\x1b[2K> a世\x1b[2D", e.Render())
}

func TestLineEditor_RenderCursorAtEnd(t *testing.T) {
	e := NewLineEditor(16)
	e.SetPrompt("bob << ")
	feedString(e, "hi")

	out := e.Render()
	assert.Equal(t, "\r\x1b[2Kbob << hi", out)
	assert.False(t, strings.Contains(out, "D"))
}

func TestNewLineEditor_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultLineCapacity, NewLineEditor(0).Cap())
}
