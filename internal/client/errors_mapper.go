// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/go-minichat/internal/app"
	"github.com/MKhiriev/go-minichat/internal/command"
	"github.com/MKhiriev/go-minichat/internal/service"
)

// warnings maps input errors to the warning printed for them.
var warnings = []struct {
	err error
	msg string
}{
	{command.ErrInvalidCommand, app.MsgInvalidCommand},
	{command.ErrWrongArity, app.MsgWrongArity},
	{ErrInvalidArgs, app.MsgInvalidArgs},
	{ErrInvalidContactIndex, app.MsgInvalidContactIndex},
	{ErrInvalidRequestIndex, app.MsgInvalidRequestIndex},
	{ErrInvalidFriendIndex, app.MsgInvalidFriendIndex},
	{ErrNotTalking, app.MsgNotTalking},
}

// report prints err for the user. Input errors become warnings, everything
// else is an error line.
func (a *App) report(err error) {
	if err == nil {
		return
	}

	a.logger.Debug().Str("func", "*App.report").Err(err).Msg("command failed")

	for _, w := range warnings {
		if errors.Is(err, w.err) {
			a.printer.Warn("%s", w.msg)
			return
		}
	}

	var backendErr *service.BackendError
	switch {
	case errors.Is(err, ErrInvalidGroupIndex):
		a.printer.Error("%s", app.MsgInvalidGroupIndex)
	case errors.As(err, &backendErr):
		a.printer.Error("! %s", backendErr.Error())
	default:
		a.printer.Error("! %v", err)
	}
}
