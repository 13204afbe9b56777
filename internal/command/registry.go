// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package command

import (
	"context"
	"fmt"
)

// Handler executes a command. args has between Arity.Min and Arity.Max
// elements. A returned error is reported to the user; it never stops the
// client.
type Handler func(ctx context.Context, args []string) error

// Command is one entry of the registry.
type Command struct {
	// Name is matched against the first token of the line.
	Name string
	// Desc is the one-line usage shown by `/help`.
	Desc string
	// Arity is the argument contract.
	Arity Arity
	// Persist marks commands that mutate persistent state. The registry
	// calls its persist hook after such a command succeeds.
	Persist bool
	// Handler executes the command.
	Handler Handler
}

// Option configures a [Registry].
type Option func(*Registry)

// WithPersistHook sets the function called after every successful command
// marked Persist. Its failures are the hook's own business.
func WithPersistHook(hook func(ctx context.Context, cmd *Command)) Option {
	return func(r *Registry) {
		r.persist = hook
	}
}

// Registry is a static table of commands kept in declaration order.
type Registry struct {
	commands []*Command
	byName   map[string]*Command
	persist  func(ctx context.Context, cmd *Command)
}

// NewRegistry builds a registry. A later command with a duplicate name
// replaces the earlier one.
func NewRegistry(commands []Command, opts ...Option) *Registry {
	r := &Registry{
		byName: make(map[string]*Command, len(commands)),
	}

	for i := range commands {
		cmd := &commands[i]
		if prev, ok := r.byName[cmd.Name]; ok {
			*prev = *cmd
			continue
		}
		r.commands = append(r.commands, cmd)
		r.byName[cmd.Name] = cmd
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Commands lists commands in declaration order.
func (r *Registry) Commands() []*Command {
	return r.commands
}

// Dispatch parses line (without the leading '/') and runs the matching
// command. Unknown names yield [ErrInvalidCommand], too few arguments yield
// [ErrWrongArity]. Otherwise the handler's error is returned as is.
func (r *Registry) Dispatch(ctx context.Context, line string) error {
	name, rest, hasArgs := SplitName(line)

	cmd, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, name)
	}

	var args []string
	if hasArgs {
		args = Split(rest, cmd.Arity.Max)
	}
	if len(args) < cmd.Arity.Min {
		return fmt.Errorf("%w: %s wants %d, got %d", ErrWrongArity, cmd.Name, cmd.Arity.Min, len(args))
	}

	if err := cmd.Handler(ctx, args); err != nil {
		return err
	}

	if cmd.Persist && r.persist != nil {
		r.persist(ctx, cmd)
	}
	return nil
}
