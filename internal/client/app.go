// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"io"
	"time"

	"github.com/MKhiriev/go-minichat/internal/command"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/service"
	"github.com/MKhiriev/go-minichat/internal/session"
	"github.com/MKhiriev/go-minichat/internal/tui"
	"github.com/MKhiriev/go-minichat/models"
	"github.com/atotto/clipboard"
)

const (
	// DrainInterval is the accumulated backend time between two input
	// drains.
	DrainInterval = 30 * time.Millisecond
	// DefaultHistoryCount is the number of history lines `/history` prints
	// when no count is given.
	DefaultHistoryCount = 20

	clockLayout = "15:04:05"
)

// App is the interactive client. It is driven by [App.Run] on a single
// goroutine.
type App struct {
	backend   service.Backend
	input     InputSource
	directory *session.Directory
	requests  *session.Requests
	active    session.Index
	editor    *tui.LineEditor
	printer   *tui.Printer
	registry  *command.Registry
	logger    *logger.Logger

	now      func() time.Time
	copyText func(string) error
	elapsed  time.Duration

	// relayIssue is the last relay failure shown, "" while the relay works.
	relayIssue string
}

var _ Client = (*App)(nil)

// Option configures an [App].
type Option func(*App)

// WithClock replaces the clock used to stamp chat lines.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// WithClipboard replaces the function `/copyid` uses to copy text.
func WithClipboard(copyText func(string) error) Option {
	return func(a *App) {
		a.copyText = copyText
	}
}

// WithLineCapacity sets the capacity of the line editor.
func WithLineCapacity(capacity int) Option {
	return func(a *App) {
		a.editor = tui.NewLineEditor(capacity)
	}
}

// NewApp builds a client reading keystrokes from input and writing to out.
// The session directory is populated from the backend's saved state.
func NewApp(backend service.Backend, input InputSource, out io.Writer, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		backend:   backend,
		input:     input,
		directory: session.NewDirectory(),
		requests:  session.NewRequests(),
		active:    session.NoSession,
		editor:    tui.NewLineEditor(tui.DefaultLineCapacity),
		printer:   tui.NewPrinter(out),
		logger:    logger,
		now:       time.Now,
		copyText:  clipboard.WriteAll,
	}

	for _, opt := range opts {
		opt(a)
	}

	a.registry = command.NewRegistry(a.commands(), command.WithPersistHook(a.persist))
	a.load()
	a.refreshPrompt()

	return a
}

// load fills the directory from the backend.
func (a *App) load() {
	for _, f := range a.backend.Friends() {
		a.putContact(f)
	}
	for _, g := range a.backend.Groups() {
		a.putGroup(g)
	}
}

// addContact inserts the friend the backend just created.
func (a *App) addContact(num uint32) {
	for _, f := range a.backend.Friends() {
		if f.Num == num {
			a.putContact(f)
			return
		}
	}
	a.putContact(models.FriendInfo{Num: num})
}

// addGroup inserts the group the backend just created or joined.
func (a *App) addGroup(num uint32) {
	for _, g := range a.backend.Groups() {
		if g.Num == num {
			a.putGroup(g)
			return
		}
	}
	a.putGroup(models.GroupInfo{Num: num})
}

func (a *App) putContact(f models.FriendInfo) {
	c, err := a.directory.AddContact(f.Num)
	if errors.Is(err, session.ErrSessionExists) {
		a.logger.Warn().Str("func", "*App.putContact").Uint32("friend", f.Num).Msg("contact already listed")
		c = a.directory.Contact(f.Num)
	}

	c.Name = tui.Sanitize(f.Name)
	c.StatusMessage = tui.Sanitize(f.StatusMessage)
	c.Connection = f.Connection
	c.PublicKey = f.PublicKey
}

func (a *App) putGroup(g models.GroupInfo) {
	grp, err := a.directory.AddGroup(g.Num)
	if errors.Is(err, session.ErrSessionExists) {
		a.logger.Warn().Str("func", "*App.putGroup").Uint32("group", g.Num).Msg("group already listed")
		grp = a.directory.Group(g.Num)
	}

	grp.Title = tui.Sanitize(g.Title)
	grp.Peers = sanitizePeers(g.Peers)
}

func sanitizePeers(peers []models.PeerInfo) []models.PeerInfo {
	out := make([]models.PeerInfo, len(peers))
	for i, p := range peers {
		out[i] = models.PeerInfo{PublicKey: p.PublicKey, Name: tui.Sanitize(p.Name)}
	}
	return out
}

// enter switches to talk mode with the session at idx.
func (a *App) enter(idx session.Index) {
	a.active = idx
	a.refreshPrompt()
}

// leave switches back to command mode.
func (a *App) leave() {
	a.active = session.NoSession
	a.refreshPrompt()
}

// refreshPrompt sets the editor prompt for the current mode.
func (a *App) refreshPrompt() {
	s, ok := a.directory.Find(a.active)
	if !ok {
		a.editor.SetPrompt(a.printer.CommandPrompt())
		return
	}

	switch s := s.(type) {
	case *session.Contact:
		a.editor.SetPrompt(a.printer.FriendPrompt(s.Name))
	case *session.Group:
		a.editor.SetPrompt(a.printer.GroupPrompt(s.Title))
	}
}

func (a *App) clock() string {
	return a.now().Format(clockLayout)
}
