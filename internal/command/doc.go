// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package command implements the slash-command grammar of the client.
//
// A command line has the form "name arg1 arg2 ...". Arguments are separated
// by runs of blanks (space or tab). The final argument a command declares
// absorbs the remainder of the line verbatim, so "/setname John Smith" passes
// a single argument "John Smith" and "/settitle 3 My New Title" passes
// "3" and "My New Title".
//
// [Registry] maps names to [Command] values, validates the number of
// arguments against each command's [Arity] and invokes the handler.
package command
