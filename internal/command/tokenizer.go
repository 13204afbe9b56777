// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import "strings"

const delimiters = " \t"

// RestArgs is the number of optional arguments an [AtLeast] contract accepts
// on top of its minimum.
const RestArgs = 10

// Arity is the argument contract of a command.
type Arity struct {
	// Min is the smallest accepted number of arguments.
	Min int
	// Max is the number of arguments collected. The argument at position
	// Max-1 takes the remainder of the line.
	Max int
}

// Exact returns a contract requiring exactly n arguments.
func Exact(n int) Arity {
	return Arity{Min: n, Max: n}
}

// AtLeast returns a contract requiring n arguments and accepting up to
// [RestArgs] more.
func AtLeast(n int) Arity {
	return Arity{Min: n, Max: n + RestArgs}
}

// Variadic reports whether the contract accepts optional arguments.
func (a Arity) Variadic() bool {
	return a.Max > a.Min
}

// popToken cuts the first blank-delimited token off s. more reports whether
// a delimiter followed the token; the remainder then has its leading blanks
// skipped and may be empty.
func popToken(s string) (tok, rest string, more bool) {
	i := strings.IndexAny(s, delimiters)
	if i < 0 {
		return s, "", false
	}
	return s[:i], strings.TrimLeft(s[i+1:], delimiters), true
}

// SplitName separates the command name from its arguments. The leading '/'
// must already be stripped. hasArgs is false when nothing, not even a blank,
// follows the name.
func SplitName(line string) (name, rest string, hasArgs bool) {
	return popToken(line)
}

// Split tokenizes the argument part of a command line. At most max tokens are
// returned; the last of them holds the rest of the line verbatim, embedded
// blanks included. A remainder left by a trailing blank still counts as one
// (empty) token, so "3 " yields "3" and "".
func Split(rest string, max int) []string {
	var tokens []string
	for more := true; more && len(tokens) < max; {
		if len(tokens) == max-1 {
			tokens = append(tokens, rest)
			break
		}

		var tok string
		tok, rest, more = popToken(rest)
		tokens = append(tokens, tok)
	}
	return tokens
}
