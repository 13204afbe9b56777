// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-minichat/internal/command"
	"github.com/MKhiriev/go-minichat/internal/session"
	"github.com/MKhiriev/go-minichat/internal/tui"
	"github.com/MKhiriev/go-minichat/models"
)

const (
	historyBegin = "------------ HISTORY BEGIN ---------------"
	historyEnd   = "------------ HISTORY   END ---------------"
)

func (a *App) commands() []command.Command {
	return []command.Command{
		{Name: "guide", Desc: "- print the guide", Arity: command.Exact(0), Handler: a.guide},
		{Name: "help", Desc: "- print this message.", Arity: command.Exact(0), Handler: a.help},
		{Name: "save", Desc: "- save your data.", Arity: command.Exact(0), Handler: a.save},
		{
			Name:    "info",
			Desc:    "[<contact_index>] - show one contact's info, or yourself's info if <contact_index> is empty.",
			Arity:   command.AtLeast(0),
			Handler: a.info,
		},
		{Name: "setname", Desc: "<name> - set your name", Arity: command.Exact(1), Persist: true, Handler: a.setName},
		{
			Name:    "setstmsg",
			Desc:    "<status_message> - set your status message.",
			Arity:   command.Exact(1),
			Persist: true,
			Handler: a.setStatusMessage,
		},
		{Name: "add", Desc: "<address> <msg> - add friend", Arity: command.Exact(2), Persist: true, Handler: a.add},
		{Name: "del", Desc: "<contact_index> - del a contact.", Arity: command.Exact(1), Persist: true, Handler: a.del},
		{Name: "contacts", Desc: "- list your contacts(friends and groups).", Arity: command.Exact(0), Handler: a.contacts},
		{
			Name:    "go",
			Desc:    "[<contact_index>] - goto talk to a contact, or goto cmd mode if <contact_index> is empty.",
			Arity:   command.AtLeast(0),
			Handler: a.goTo,
		},
		{
			Name:    "history",
			Desc:    fmt.Sprintf("[<n>] - show previous <n> items(default:%d) of current chat history", DefaultHistoryCount),
			Arity:   command.AtLeast(0),
			Handler: a.history,
		},
		{
			Name:    "accept",
			Desc:    "[<request_index>] - accept or list(if no <request_index> was provided) friend/group requests.",
			Arity:   command.AtLeast(0),
			Persist: true,
			Handler: a.accept,
		},
		{
			Name:    "deny",
			Desc:    "[<request_index>] - deny or list(if no <request_index> was provided) friend/group requests.",
			Arity:   command.AtLeast(0),
			Persist: true,
			Handler: a.deny,
		},
		{
			Name:    "invite",
			Desc:    "<friend_contact_index> [<group_contact_index>] - invite a friend to a group chat. default: create a group.",
			Arity:   command.AtLeast(1),
			Persist: true,
			Handler: a.invite,
		},
		{
			Name:    "settitle",
			Desc:    "<group_contact_index> <title> - set group title.",
			Arity:   command.Exact(2),
			Persist: true,
			Handler: a.setTitle,
		},
		{Name: "copyid", Desc: "- copy your address to the clipboard.", Arity: command.Exact(0), Handler: a.copyID},
	}
}

// persist saves backend state after a successful mutating command.
func (a *App) persist(_ context.Context, cmd *command.Command) {
	if err := a.backend.Save(); err != nil {
		a.logger.Err(err).Str("func", "*App.persist").Str("command", cmd.Name).Msg("error saving state")
		a.report(err)
	}
}

func (a *App) guide(_ context.Context, _ []string) error {
	for _, line := range []string{
		"This program is a minimal workable chat client.",
		"As it pursued simplicity at the cost of robustness and efficiency,",
		"It should only be used for learning or playing with, instead of daily use.",
		"",
		"Commands are any input lines with leading `/`,",
		"Command args are separated by blanks,",
		"while some special commands may accept any-character string, like `/setname` and `/setstmsg`.",
		"",
		"Use `/setname <YOUR NAME>` to set your name",
		"Use `/info` to see your Name, Address and Network Connection.",
		"Use `/contacts` to list friends and groups, and use `/go <TARGET>` to talk to one of them.",
		"Finally, use `/help` to get a list of available commands.",
		"",
		"HAVE FUN!",
		"",
	} {
		a.printer.Print("%s", line)
	}
	return nil
}

// help lists every command except guide, which the banner already points to.
func (a *App) help(_ context.Context, _ []string) error {
	for _, cmd := range a.registry.Commands() {
		if cmd.Name == "guide" {
			continue
		}
		a.printer.Print("%-16s%s", cmd.Name, cmd.Desc)
	}
	return nil
}

func (a *App) save(_ context.Context, _ []string) error {
	return a.backend.Save()
}

func (a *App) info(_ context.Context, args []string) error {
	if len(args) == 0 {
		self := a.backend.Self()
		a.printInfo("Name:", self.Name)
		a.printInfo("Address:", self.Address)
		a.printInfo("Public Key:", self.PublicKey.Hex())
		a.printInfo("Status Msg:", self.StatusMessage)
		a.printInfo("Network:", self.Connection.String())
		return nil
	}

	s, err := a.lookup(args[0])
	if err != nil {
		return ErrInvalidContactIndex
	}

	switch s := s.(type) {
	case *session.Contact:
		a.printInfo("Name:", s.Name)
		a.printInfo("Public Key:", s.PublicKey.Hex())
		a.printInfo("Status Msg:", s.StatusMessage)
		a.printInfo("Network:", s.Connection.String())
	case *session.Group:
		a.printer.Print("GROUP TITLE:\t%s", s.Title)
		a.printer.Print("PEER COUNT:\t%d", len(s.Peers))
		a.printer.Print("Peers:")
		for _, p := range s.Peers {
			a.printer.Print("\t%s", p.Name)
		}
	}
	return nil
}

func (a *App) printInfo(label, value string) {
	a.printer.Print("%s%s", tui.Pad(label, 15), value)
}

func (a *App) setName(_ context.Context, args []string) error {
	return a.backend.SetName(args[0])
}

func (a *App) setStatusMessage(_ context.Context, args []string) error {
	return a.backend.SetStatusMessage(args[0])
}

func (a *App) add(_ context.Context, args []string) error {
	num, err := a.backend.AddFriend(args[0], args[1])
	if err != nil {
		return err
	}

	a.addContact(num)
	return nil
}

func (a *App) del(_ context.Context, args []string) error {
	s, err := a.lookup(args[0])
	if err != nil {
		return ErrInvalidContactIndex
	}

	switch s := s.(type) {
	case *session.Contact:
		if err = a.backend.DeleteFriend(s.Num); err != nil {
			return err
		}
	case *session.Group:
		if err = a.backend.DeleteGroup(s.Num); err != nil {
			return err
		}
	}

	if err = a.directory.Remove(s.Index()); err != nil {
		return fmt.Errorf("remove %s: %w", s.Index().Kind(), err)
	}
	if a.active == s.Index() {
		a.leave()
	}
	return nil
}

func (a *App) contacts(_ context.Context, _ []string) error {
	a.printer.Print("#Friends(contact_index|name|connection|status message):")
	a.printer.Print("")
	for _, c := range a.directory.Contacts() {
		a.printer.Print("%3d  %s  %s  %s",
			c.Index(), tui.Column(c.Name, 15), tui.Column(c.Connection.String(), 12), c.StatusMessage)
	}

	a.printer.Print("")
	a.printer.Print("#Groups(contact_index|count of peers|name):")
	a.printer.Print("")
	for _, g := range a.directory.Groups() {
		a.printer.Print("%3d  %10d  %s", g.Index(), len(g.Peers), g.Title)
	}
	return nil
}

func (a *App) goTo(_ context.Context, args []string) error {
	if len(args) == 0 {
		a.leave()
		return nil
	}

	s, err := a.lookup(args[0])
	if err != nil {
		return ErrInvalidContactIndex
	}

	a.enter(s.Index())
	return nil
}

func (a *App) history(_ context.Context, args []string) error {
	n := DefaultHistoryCount
	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 10, 31)
		if err != nil {
			a.report(ErrInvalidArgs)
		} else {
			n = int(v)
		}
	}

	s, ok := a.directory.Find(a.active)
	if !ok {
		return ErrNotTalking
	}

	a.printer.Print("%s", historyBegin)
	for _, msg := range s.History().Read(n) {
		a.printer.Print("%s", msg)
	}
	a.printer.Print("%s", historyEnd)
	return nil
}

func (a *App) accept(_ context.Context, args []string) error {
	req, err := a.takeRequest(args)
	if err != nil || req == nil {
		return err
	}

	switch p := req.Payload.(type) {
	case session.FriendPayload:
		num, err := a.backend.AddFriendNoRequest(p.PublicKey)
		if err != nil {
			return err
		}
		a.addContact(num)
	case session.GroupPayload:
		num, err := a.backend.JoinGroup(p.FriendNum, p.Cookie)
		if err != nil {
			return err
		}
		a.addGroup(num)
	}
	return nil
}

func (a *App) deny(_ context.Context, args []string) error {
	_, err := a.takeRequest(args)
	return err
}

// takeRequest lists the queue when args is empty and returns a nil request.
// Otherwise it removes and returns the request named by args[0].
func (a *App) takeRequest(args []string) (*session.Request, error) {
	if len(args) == 0 {
		for _, req := range a.requests.List() {
			a.printer.Print("%-9d%-12s%s", req.ID, req.KindLabel(), req.Message)
		}
		return nil, nil
	}

	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		return nil, ErrInvalidRequestIndex
	}

	req, ok := a.requests.Take(uint32(id))
	if !ok {
		return nil, ErrInvalidRequestIndex
	}
	return req, nil
}

func (a *App) invite(_ context.Context, args []string) error {
	friendIdx, err := session.ParseIndex(args[0])
	if err != nil || friendIdx.Kind() != session.KindContact || a.directory.Contact(friendIdx.Num()) == nil {
		return ErrInvalidFriendIndex
	}

	var groupNum uint32
	if len(args) == 1 {
		if groupNum, err = a.backend.NewGroup(); err != nil {
			return err
		}
		a.addGroup(groupNum)
	} else {
		g, err := a.lookupGroup(args[1])
		if err != nil {
			return err
		}
		groupNum = g.Num
	}

	return a.backend.InviteToGroup(friendIdx.Num(), groupNum)
}

func (a *App) setTitle(_ context.Context, args []string) error {
	g, err := a.lookupGroup(args[0])
	if err != nil {
		return err
	}

	if err = a.backend.SetGroupTitle(g.Num, args[1]); err != nil {
		return err
	}

	g.Title = tui.Sanitize(args[1])
	if a.active == g.Index() {
		a.refreshPrompt()
	}
	return nil
}

func (a *App) copyID(_ context.Context, _ []string) error {
	if err := a.copyText(a.backend.Self().Address); err != nil {
		return fmt.Errorf("copy address to clipboard: %w", err)
	}

	a.printer.Info("* Address copied to clipboard")
	return nil
}

// lookup resolves a user-supplied combined index.
func (a *App) lookup(arg string) (session.Session, error) {
	idx, err := session.ParseIndex(arg)
	if err != nil {
		return nil, err
	}

	s, ok := a.directory.Find(idx)
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return s, nil
}

func (a *App) lookupGroup(arg string) (*session.Group, error) {
	idx, err := session.ParseIndex(arg)
	if err != nil || idx.Kind() != session.KindGroup {
		return nil, ErrInvalidGroupIndex
	}

	g := a.directory.Group(idx.Num())
	if g == nil {
		return nil, ErrInvalidGroupIndex
	}
	return g, nil
}

// send delivers a chat line typed in talk mode to the active session.
func (a *App) send(s session.Session, text string) error {
	switch s := s.(type) {
	case *session.Contact:
		return a.backend.SendFriendMessage(s.Num, models.MessageNormal, text)
	case *session.Group:
		return a.backend.SendGroupMessage(s.Num, models.MessageNormal, text)
	}
	return nil
}
