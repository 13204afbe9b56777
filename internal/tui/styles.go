// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// eraseLine returns the cursor to column 0 and clears the terminal line.
const eraseLine = "\r" + ansi.EraseEntireLine

// Styles holds the colours used by a [Printer]. Colour is cosmetic: a
// renderer without colour support prints plain text.
type Styles struct {
	Info   lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
	Self   lipgloss.Style
	Guest  lipgloss.Style
}

// NewStyles builds the palette for the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Info:   r.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		Warn:   r.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		Error:  r.NewStyle().Foreground(lipgloss.ANSIColor(1)),
		Prompt: r.NewStyle().Foreground(lipgloss.ANSIColor(4)),
		Self:   r.NewStyle().Foreground(lipgloss.ANSIColor(5)),
		Guest:  r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}
