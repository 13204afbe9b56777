// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-minichat/internal/app"
	"github.com/MKhiriev/go-minichat/internal/tui"
)

// Run prints the banner and loops until the user ends the input or ctx is
// cancelled. Each tick drains the input once enough backend time has
// accumulated, pumps the backend, applies its events and then sleeps for
// the interval the backend recommends.
//
// Backend iteration failures are logged and retried on the next tick. Only
// a failing input source stops the loop with an error.
func (a *App) Run(ctx context.Context) error {
	a.printer.Raw("Type `/guide` to print the guide.")
	a.printer.Raw("Type `/help` to print command list.")
	a.printer.Raw("")
	a.printer.Info("* Waiting to be online ...")

	a.elapsed = DrainInterval
	for {
		if a.elapsed >= DrainInterval {
			a.elapsed = 0

			done, err := a.pump(ctx)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}

		a.iterate(ctx)
		a.dispatchEvents()

		interval := a.backend.IterationInterval()
		a.elapsed += interval

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			a.logger.Info().Str("func", "*App.Run").Msg("interrupted")
			return nil
		case <-timer.C:
		}
	}
}

// iterate pumps the backend once. A relay failure is shown as a warning the
// first time it is seen, not on every retry.
func (a *App) iterate(ctx context.Context) {
	err := a.backend.Iterate(ctx)
	if err == nil {
		a.relayIssue = ""
		return
	}

	a.logger.Err(err).Str("func", "*App.iterate").Msg("backend iteration failed")
	if msg := tui.HumanizeNetworkError(err); msg != a.relayIssue {
		a.relayIssue = msg
		a.printer.Warn("! %s", msg)
	}
}

// pump feeds every byte available on the input through the editor and
// redraws the prompt. It reports done when the user ended the input.
func (a *App) pump(ctx context.Context) (bool, error) {
	input, err := a.input.Drain()
	if err != nil {
		return false, fmt.Errorf("error reading input: %w", err)
	}

	for _, c := range input {
		if tui.IsEndOfInput(c) {
			return true, nil
		}

		line, ok := a.editor.Feed(c)
		if !ok {
			continue
		}
		a.handleLine(ctx, strings.TrimSuffix(line, "\n"))
	}

	if err = a.editor.Redraw(a.printer.Writer()); err != nil {
		a.logger.Err(err).Str("func", "*App.pump").Msg("error redrawing prompt")
	}
	return false, nil
}

// handleLine routes one committed line. In talk mode anything not starting
// with '/' is chat text; everything else is echoed and dispatched as a
// command.
func (a *App) handleLine(ctx context.Context, line string) {
	if a.active.Valid() && !strings.HasPrefix(line, "/") {
		if line != "" {
			a.talk(line)
		}
		return
	}

	a.printer.Print("%s", a.printer.CommandEcho(line))
	if line == "" {
		return
	}

	if !strings.HasPrefix(line, "/") {
		a.printer.Warn("%s", app.MsgInvalidCommand)
		return
	}

	if err := a.registry.Dispatch(ctx, line[1:]); err != nil {
		a.report(err)
	}
}

// talk renders text as the user's own message, records it and sends it to
// the active session.
func (a *App) talk(text string) {
	s, ok := a.directory.Find(a.active)
	if !ok {
		a.printer.Error("%s", app.MsgStrayChat)
		return
	}

	msg := a.printer.SelfMessage(a.clock(), a.backend.Self().Name, text)
	s.History().Push(msg)
	a.printer.Print("%s", msg)

	if err := a.send(s, text); err != nil {
		a.report(err)
	}
}
