// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	promptNameWidth  = 12
	messageNameWidth = 12
)

// Printer writes user-facing lines to the terminal. Every line starts with
// an erase-line sequence so it overwrites the prompt being edited.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter returns a printer writing to w. Colours are enabled only when w
// is a colour capable terminal.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, styles: NewStyles(lipgloss.NewRenderer(w))}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

// Print writes one plain line.
func (p *Printer) Print(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Info writes one informational line.
func (p *Printer) Info(format string, args ...any) {
	p.line(p.styles.Info.Render(fmt.Sprintf(format, args...)))
}

// Warn writes one warning line.
func (p *Printer) Warn(format string, args ...any) {
	p.line(p.styles.Warn.Render(fmt.Sprintf(format, args...)))
}

// Error writes one error line.
func (p *Printer) Error(format string, args ...any) {
	p.line(p.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Raw writes s followed by a newline without erasing the current line.
func (p *Printer) Raw(s string) {
	_, _ = io.WriteString(p.w, s+"\n")
}

func (p *Printer) line(s string) {
	_, _ = io.WriteString(p.w, eraseLine+s+"\n")
}

// CommandPrompt is the prompt shown in command mode.
func (p *Printer) CommandPrompt() string {
	return p.styles.Prompt.Render("> ")
}

// FriendPrompt is the prompt shown while talking to a contact.
func (p *Printer) FriendPrompt(name string) string {
	return p.styles.Prompt.Render(Truncate(name, promptNameWidth) + " << ")
}

// GroupPrompt is the prompt shown while talking in a group.
func (p *Printer) GroupPrompt(title string) string {
	return p.styles.Prompt.Render(Truncate(title, promptNameWidth) + " <<< ")
}

// CommandEcho renders an input line echoed back in command mode.
func (p *Printer) CommandEcho(line string) string {
	return p.CommandPrompt() + line
}

// SelfMessage renders a message typed by the local user.
func (p *Printer) SelfMessage(clock, name, text string) string {
	return p.styles.Self.Render(messagePrefix(clock, name)) + text
}

// GuestMessage renders a message received from somebody else.
func (p *Printer) GuestMessage(clock, name, text string) string {
	return p.styles.Guest.Render(messagePrefix(clock, name)) + text
}

func messagePrefix(clock, name string) string {
	return clock + "  " + Column(name, messageNameWidth) + " | "
}

// Truncate cuts s to at most width terminal cells.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}

// Column cuts s to width cells and right-aligns it in a column of that width.
func Column(s string, width int) string {
	return runewidth.FillLeft(Truncate(s, width), width)
}

// Pad left-aligns s in a column at least width cells wide without cutting it.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Sanitize removes terminal escape sequences from text received from peers.
func Sanitize(s string) string {
	return ansi.Strip(s)
}
