// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// Control bytes understood by the line editor and the input pipeline.
const (
	keyCtrlA     byte = 0x01 // move to start
	keyCtrlB     byte = 0x02 // move left
	KeyCtrlC     byte = 0x03 // end of input when the terminal does not raise SIGINT
	KeyCtrlD     byte = 0x04 // end of input
	keyCtrlE     byte = 0x05 // move to end
	keyCtrlF     byte = 0x06 // move right
	keyBackspace byte = 0x08 // C-h
	keyNewline   byte = '\n'
	keyCtrlK     byte = 0x0b // kill to end
	keyCtrlU     byte = 0x15 // clear to start
	keyCtrlW     byte = 0x17 // delete word left
	keyEscape    byte = 0x1b
	keyDelete    byte = 0x7f

	keyArrowLeft  byte = 'D'
	keyArrowRight byte = 'C'
)

// IsEndOfInput reports whether c terminates the client.
func IsEndOfInput(c byte) bool {
	return c == KeyCtrlD || c == KeyCtrlC
}
