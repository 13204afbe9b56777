// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// DefaultLineCapacity is the number of bytes a line may hold.
const DefaultLineCapacity = 512

// LineEditor is a single-line editor fed one byte at a time.
//
// The buffer is split at the cursor. The head, buf[0:nbuf], holds the text
// left of the cursor. The tail, buf[cap-nstack:cap], holds the text right of
// the cursor packed against the end of the buffer. Moving the cursor
// transfers one byte between the two regions, so it costs O(1) whatever the
// line length. nbuf+nstack never exceeds the capacity.
type LineEditor struct {
	buf    []byte
	nbuf   int
	nstack int

	// escaped counts bytes since the last ESC: 1 right after it, 3 at the
	// final byte of a CSI arrow key. Zero means no ESC seen yet.
	escaped int

	prompt string
}

// NewLineEditor returns an editor holding at most capacity bytes.
func NewLineEditor(capacity int) *LineEditor {
	if capacity <= 0 {
		capacity = DefaultLineCapacity
	}
	return &LineEditor{buf: make([]byte, capacity)}
}

// Feed consumes one byte. When c commits the line, Feed returns the whole
// line (cursor position ignored) followed by '\n' and clears the editor.
func (e *LineEditor) Feed(c byte) (string, bool) {
	if c == keyEscape {
		e.escaped = 1
		return "", false
	}
	if e.escaped > 0 && e.escaped < 4 {
		e.escaped++
	}

	switch c {
	case keyNewline:
		line := e.String() + "\n"
		e.nbuf, e.nstack = 0, 0
		return line, true
	case keyBackspace, keyDelete:
		if e.nbuf > 0 {
			e.nbuf--
		}
	case keyCtrlU:
		e.nbuf = 0
	case keyCtrlK:
		e.nstack = 0
	case keyCtrlA:
		for e.nbuf > 0 {
			e.left()
		}
	case keyCtrlE:
		for e.nstack > 0 {
			e.right()
		}
	case keyCtrlB:
		e.MoveLeft()
	case keyCtrlF:
		e.MoveRight()
	case keyCtrlW:
		for e.nbuf > 0 && e.buf[e.nbuf-1] == ' ' {
			e.nbuf--
		}
		for e.nbuf > 0 && e.buf[e.nbuf-1] != ' ' {
			e.nbuf--
		}
	case keyArrowLeft, keyArrowRight:
		// ESC '[' was inserted literally; drop the '[' and move instead.
		if e.escaped == 3 && e.nbuf > 0 && e.buf[e.nbuf-1] == '[' {
			e.nbuf--
			if c == keyArrowLeft {
				e.MoveLeft()
			} else {
				e.MoveRight()
			}
			break
		}
		e.insert(c)
	default:
		e.insert(c)
	}

	return "", false
}

// MoveLeft moves the cursor one byte left. It is a no-op at the start.
func (e *LineEditor) MoveLeft() {
	if e.nbuf > 0 {
		e.left()
	}
}

// MoveRight moves the cursor one byte right. It is a no-op at the end.
func (e *LineEditor) MoveRight() {
	if e.nstack > 0 {
		e.right()
	}
}

func (e *LineEditor) left() {
	e.nbuf--
	e.nstack++
	e.buf[len(e.buf)-e.nstack] = e.buf[e.nbuf]
}

func (e *LineEditor) right() {
	e.buf[e.nbuf] = e.buf[len(e.buf)-e.nstack]
	e.nbuf++
	e.nstack--
}

// insert drops c when the buffer is full.
func (e *LineEditor) insert(c byte) {
	if e.nbuf+e.nstack >= len(e.buf) {
		return
	}
	e.buf[e.nbuf] = c
	e.nbuf++
}

// Head returns the text left of the cursor.
func (e *LineEditor) Head() string {
	return string(e.buf[:e.nbuf])
}

// Tail returns the text right of the cursor in reading order.
func (e *LineEditor) Tail() string {
	return string(e.buf[len(e.buf)-e.nstack:])
}

// String returns the whole line being edited.
func (e *LineEditor) String() string {
	return e.Head() + e.Tail()
}

// Cursor returns the cursor offset, which is also the head length.
func (e *LineEditor) Cursor() int {
	return e.nbuf
}

// Len returns the number of bytes on the line.
func (e *LineEditor) Len() int {
	return e.nbuf + e.nstack
}

// Cap returns the buffer capacity.
func (e *LineEditor) Cap() int {
	return len(e.buf)
}

// SetPrompt replaces the prompt drawn in front of the line.
func (e *LineEditor) SetPrompt(prompt string) {
	e.prompt = prompt
}

// Prompt returns the current prompt.
func (e *LineEditor) Prompt() string {
	return e.prompt
}

// Render returns the redraw sequence: erase the terminal line, then the
// prompt, the line and a cursor move back over the tail. The move counts
// terminal cells, so a wide rune in the tail moves the cursor by two.
func (e *LineEditor) Render() string {
	var b strings.Builder
	b.WriteString(eraseLine)
	b.WriteString(e.prompt)
	b.Write(e.buf[:e.nbuf])
	if e.nstack > 0 {
		tail := e.buf[len(e.buf)-e.nstack:]
		b.Write(tail)
		if cells := runewidth.StringWidth(string(tail)); cells > 0 {
			b.WriteString(ansi.CursorBackward(cells))
		}
	}
	return b.String()
}

// Redraw writes [LineEditor.Render] to w. Editor state is not changed.
func (e *LineEditor) Redraw(w io.Writer) error {
	_, err := io.WriteString(w, e.Render())
	return err
}
