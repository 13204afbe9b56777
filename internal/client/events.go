// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-minichat/internal/session"
	"github.com/MKhiriev/go-minichat/internal/tui"
	"github.com/MKhiriev/go-minichat/models"
)

// dispatchEvents applies every event the backend produced since the last
// call.
func (a *App) dispatchEvents() {
	for _, ev := range a.backend.Events() {
		a.handleEvent(ev)
	}
}

func (a *App) handleEvent(ev models.Event) {
	switch ev := ev.(type) {
	case models.SelfConnectionChanged:
		a.printer.Info("* You are %s", ev.Connection)

	case models.FriendConnectionChanged:
		if c := a.directory.Contact(ev.FriendNum); c != nil {
			c.Connection = ev.Connection
			a.printer.Info("* %s is %s", c.Name, ev.Connection)
		}

	case models.FriendMessage:
		a.onFriendMessage(ev)

	case models.FriendName:
		if c := a.directory.Contact(ev.FriendNum); c != nil {
			c.Name = tui.Sanitize(ev.Name)
			if a.active == c.Index() {
				a.printer.Info("* Opposite changed name to %s", c.Name)
				a.refreshPrompt()
			}
		}

	case models.FriendStatusMessage:
		if c := a.directory.Contact(ev.FriendNum); c != nil {
			c.StatusMessage = tui.Sanitize(ev.StatusMessage)
		}

	case models.FriendRequest:
		a.printer.Info("* receive friend request(use `/accept` to see).")
		a.requests.Enqueue(tui.Sanitize(ev.Message), session.FriendPayload{PublicKey: ev.PublicKey})

	case models.GroupInvite:
		a.onGroupInvite(ev)

	case models.GroupTitle:
		if g := a.directory.Group(ev.GroupNum); g != nil {
			g.Title = tui.Sanitize(ev.Title)
			if a.active == g.Index() {
				a.printer.Info("* Group title changed to %s", g.Title)
				a.refreshPrompt()
			}
		}

	case models.GroupMessage:
		a.onGroupMessage(ev)

	case models.GroupPeerListChanged:
		a.onGroupPeerListChanged(ev)

	case models.GroupPeerName:
		g := a.directory.Group(ev.GroupNum)
		if g == nil {
			a.printer.Error("! Unexpected group/peer number in peer name update")
			return
		}
		p, err := g.Peer(ev.PeerNum)
		if err != nil {
			a.printer.Error("! Unexpected group/peer number in peer name update")
			return
		}
		p.Name = tui.Sanitize(ev.Name)

	default:
		a.logger.Warn().Str("func", "*App.handleEvent").Type("event", ev).Msg("unhandled event")
	}
}

func (a *App) onFriendMessage(ev models.FriendMessage) {
	c := a.directory.Contact(ev.FriendNum)
	if c == nil {
		return
	}

	if ev.Type != models.MessageNormal {
		a.printer.Info("* receive MESSAGE ACTION type from %s, not supported", c.Name)
		return
	}

	msg := a.printer.GuestMessage(a.clock(), c.Name, tui.Sanitize(ev.Text))
	c.History().Push(msg)

	if a.active == c.Index() {
		a.printer.Print("%s", msg)
		return
	}
	a.printer.Info("* receive message from %s, use `/go <contact_index>` to talk", c.Name)
}

func (a *App) onGroupInvite(ev models.GroupInvite) {
	c := a.directory.Contact(ev.FriendNum)
	if c == nil {
		return
	}

	if ev.AV {
		a.printer.Warn("* %s invites you to an AV group, which has not been supported.", c.Name)
		return
	}

	a.printer.Info("* %s invites you to a group(try `/accept` to see)", c.Name)
	a.requests.Enqueue("From "+c.Name, session.GroupPayload{FriendNum: ev.FriendNum, Cookie: ev.Cookie})
}

// onGroupPeerListChanged takes the peer list carried by the event, so peer
// numbers of the events that follow it resolve against the same list. Only
// events without a list ask the backend.
func (a *App) onGroupPeerListChanged(ev models.GroupPeerListChanged) {
	g := a.directory.Group(ev.GroupNum)
	if g == nil {
		return
	}

	peers := ev.Peers
	if peers == nil {
		var err error
		if peers, err = a.backend.GroupPeers(ev.GroupNum); err != nil {
			a.report(err)
			return
		}
	}
	g.Peers = sanitizePeers(peers)
}

func (a *App) onGroupMessage(ev models.GroupMessage) {
	g := a.directory.Group(ev.GroupNum)
	if g == nil || ev.Own {
		return
	}

	if ev.Type != models.MessageNormal {
		a.printer.Info("* receive MESSAGE ACTION type from group %s, not supported", g.Title)
		return
	}

	peer, err := g.Peer(ev.PeerNum)
	if err != nil {
		a.printer.Error("! Unknown peer_number, peer_count:%d, peer_number:%d", len(g.Peers), ev.PeerNum)
		return
	}

	msg := a.printer.GuestMessage(a.clock(), peer.Name, tui.Sanitize(ev.Text))
	g.History().Push(msg)

	if a.active == g.Index() {
		a.printer.Print("%s", msg)
		return
	}
	a.printer.Info("* receive group message from %s, in group %s", peer.Name, g.Title)
}
