// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-minichat/internal/adapter"
	"github.com/MKhiriev/go-minichat/models"
)

func (b *relayBackend) Iterate(ctx context.Context) error {
	now := b.now()
	if !b.lastPoll.IsZero() && now.Sub(b.lastPoll) < b.pollInterval {
		return nil
	}
	b.lastPoll = now

	if err := b.flush(ctx); err != nil {
		b.setConnection(models.ConnectionNone)
		return fmt.Errorf("post envelopes: %w", err)
	}

	envs, err := b.relay.FetchEnvelopes(ctx, 0)
	if err != nil {
		b.setConnection(models.ConnectionNone)
		return fmt.Errorf("fetch envelopes: %w", err)
	}
	b.setConnection(models.ConnectionTCP)

	for _, env := range envs {
		b.receive(env)
	}

	if err = b.refreshPresence(ctx); err != nil {
		return fmt.Errorf("refresh presence: %w", err)
	}

	return nil
}

// flush posts the outbox. Envelopes the relay rejects for good are dropped,
// anything else is kept for the next round.
func (b *relayBackend) flush(ctx context.Context) error {
	if len(b.outbox) == 0 {
		return nil
	}

	err := b.relay.PostEnvelopes(ctx, b.outbox)
	switch {
	case err == nil:
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrPayloadTooLarge):
		b.logger.Err(err).Str("func", "*relayBackend.flush").Int("count", len(b.outbox)).Msg("relay rejected envelopes, dropping them")
	default:
		return err
	}

	b.outbox = nil
	return nil
}

func (b *relayBackend) refreshPresence(ctx context.Context) error {
	mailboxes := make([]string, 0, len(b.friends))
	for _, num := range slices.Sorted(maps.Keys(b.friends)) {
		if f := b.friends[num]; f.confirmed {
			mailboxes = append(mailboxes, f.pk.Mailbox())
		}
	}
	if len(mailboxes) == 0 {
		return nil
	}

	seen, err := b.relay.Presence(ctx, mailboxes)
	if err != nil {
		return err
	}

	for _, num := range slices.Sorted(maps.Keys(b.friends)) {
		f := b.friends[num]
		if !f.confirmed {
			continue
		}
		conn := models.ConnectionNone
		if _, ok := seen[f.pk.Mailbox()]; ok {
			conn = models.ConnectionTCP
		}
		b.setFriendConnection(f, conn)
	}
	return nil
}

// setConnection updates the local connection. Losing the relay takes every
// contact offline with it.
func (b *relayBackend) setConnection(conn models.Connection) {
	if b.connection == conn {
		return
	}
	b.connection = conn
	b.emit(models.SelfConnectionChanged{Connection: conn})

	if conn == models.ConnectionNone {
		for _, num := range slices.Sorted(maps.Keys(b.friends)) {
			b.setFriendConnection(b.friends[num], models.ConnectionNone)
		}
	}
}

func (b *relayBackend) setFriendConnection(f *friend, conn models.Connection) {
	if f.connection == conn {
		return
	}
	f.connection = conn
	b.emit(models.FriendConnectionChanged{FriendNum: f.num, Connection: conn})
}

// receive opens one envelope and turns it into events. Envelopes that cannot
// be opened or refer to unknown contacts and groups are logged and dropped.
func (b *relayBackend) receive(env models.Envelope) {
	log := b.logger.With().Str("func", "*relayBackend.receive").Str("envelope_id", env.ID).Str("kind", string(env.Kind)).Logger()

	sender, err := models.ParsePublicKey(env.From)
	if err != nil {
		log.Warn().Err(err).Msg("bad sender")
		return
	}

	plain, err := b.identity.Open(env.Payload, env.Nonce, sender)
	if err != nil {
		log.Warn().Err(err).Msg("cannot open envelope")
		return
	}

	var p models.EnvelopePayload
	if err = json.Unmarshal(plain, &p); err != nil {
		log.Warn().Err(err).Msg("bad payload")
		return
	}

	var handled bool
	switch env.Kind {
	case models.EnvelopeFriendRequest:
		handled = b.onFriendRequest(sender, p)
	case models.EnvelopeFriendAccept:
		handled = b.onFriendAccept(sender, p)
	case models.EnvelopeProfile:
		handled = b.onProfile(sender, p)
	case models.EnvelopeMessage:
		handled = b.onMessage(sender, p)
	case models.EnvelopeGroupInvite:
		handled = b.onGroupInvite(sender, p)
	case models.EnvelopeGroupJoin:
		handled = b.onGroupJoin(sender, p)
	case models.EnvelopeGroupMessage:
		handled = b.onGroupMessage(sender, p)
	case models.EnvelopeGroupTitle:
		handled = b.onGroupTitle(sender, p)
	case models.EnvelopeGroupLeave:
		handled = b.onGroupLeave(sender, p)
	}

	if !handled {
		log.Debug().Str("from", env.From).Msg("envelope dropped")
	}
}

func (b *relayBackend) onFriendRequest(sender models.PublicKey, p models.EnvelopePayload) bool {
	if f := b.friendByKey(sender); f != nil {
		// both sides sent a request, or the sender lost us; confirm quietly
		f.confirmed = true
		b.updateFriendProfile(f, p)
		env, err := b.seal(sender, models.EnvelopeFriendAccept, b.profilePayload())
		if err != nil {
			b.logger.Err(err).Str("func", "*relayBackend.onFriendRequest").Msg("error sealing accept")
			return true
		}
		b.outbox = append(b.outbox, env)
		return true
	}

	b.requestProfiles[sender] = p
	b.emit(models.FriendRequest{PublicKey: sender, Message: p.Text})
	return true
}

func (b *relayBackend) onFriendAccept(sender models.PublicKey, p models.EnvelopePayload) bool {
	f := b.friendByKey(sender)
	if f == nil {
		return false
	}
	f.confirmed = true
	b.updateFriendProfile(f, p)
	return true
}

func (b *relayBackend) onProfile(sender models.PublicKey, p models.EnvelopePayload) bool {
	handled := false
	if f := b.friendByKey(sender); f != nil && f.confirmed {
		b.updateFriendProfile(f, p)
		handled = true
	}

	for _, num := range slices.Sorted(maps.Keys(b.groups)) {
		g := b.groups[num]
		i := g.peerIndex(sender)
		if i < 0 {
			continue
		}
		handled = true
		if g.peers[i].Name != p.Name {
			g.peers[i].Name = p.Name
			b.emit(models.GroupPeerName{GroupNum: g.num, PeerNum: uint32(i), Name: p.Name})
		}
	}
	return handled
}

func (b *relayBackend) updateFriendProfile(f *friend, p models.EnvelopePayload) {
	if f.name != p.Name {
		f.name = p.Name
		b.emit(models.FriendName{FriendNum: f.num, Name: p.Name})
	}
	if f.statusMessage != p.StatusMessage {
		f.statusMessage = p.StatusMessage
		b.emit(models.FriendStatusMessage{FriendNum: f.num, StatusMessage: p.StatusMessage})
	}
}

func (b *relayBackend) onMessage(sender models.PublicKey, p models.EnvelopePayload) bool {
	f := b.friendByKey(sender)
	if f == nil || !f.confirmed {
		return false
	}
	b.emit(models.FriendMessage{FriendNum: f.num, Type: p.Type, Text: p.Text})
	return true
}

func (b *relayBackend) onGroupInvite(sender models.PublicKey, p models.EnvelopePayload) bool {
	f := b.friendByKey(sender)
	if f == nil || !f.confirmed || len(p.Cookie) == 0 {
		return false
	}
	b.emit(models.GroupInvite{FriendNum: f.num, Cookie: p.Cookie})
	return true
}

func (b *relayBackend) onGroupJoin(sender models.PublicKey, p models.EnvelopePayload) bool {
	g := b.groupByID(p.GroupID)
	if g == nil {
		return false
	}

	if i := g.peerIndex(sender); i >= 0 {
		if g.peers[i].Name != p.Name {
			g.peers[i].Name = p.Name
			b.emit(models.GroupPeerName{GroupNum: g.num, PeerNum: uint32(i), Name: p.Name})
		}
		return true
	}

	g.peers = append(g.peers, models.PeerInfo{PublicKey: sender, Name: p.Name})
	b.emit(models.GroupPeerListChanged{GroupNum: g.num, Peers: slices.Clone(g.peers)})
	return true
}

// senderPeerNum returns the peer number of sender in g. A sender missing from
// the peer list gets len(peers), which consumers treat as unknown.
func senderPeerNum(g *group, sender models.PublicKey) uint32 {
	if i := g.peerIndex(sender); i >= 0 {
		return uint32(i)
	}
	return uint32(len(g.peers))
}

func (b *relayBackend) onGroupMessage(sender models.PublicKey, p models.EnvelopePayload) bool {
	g := b.groupByID(p.GroupID)
	if g == nil {
		return false
	}
	b.emit(models.GroupMessage{GroupNum: g.num, PeerNum: senderPeerNum(g, sender), Type: p.Type, Text: p.Text})
	return true
}

func (b *relayBackend) onGroupTitle(sender models.PublicKey, p models.EnvelopePayload) bool {
	g := b.groupByID(p.GroupID)
	if g == nil {
		return false
	}
	g.title = p.Title
	b.emit(models.GroupTitle{GroupNum: g.num, PeerNum: senderPeerNum(g, sender), Title: p.Title})
	return true
}

func (b *relayBackend) onGroupLeave(sender models.PublicKey, p models.EnvelopePayload) bool {
	g := b.groupByID(p.GroupID)
	if g == nil {
		return false
	}
	i := g.peerIndex(sender)
	if i < 0 {
		return false
	}
	g.peers = slices.Delete(g.peers, i, i+1)
	b.emit(models.GroupPeerListChanged{GroupNum: g.num, Peers: slices.Clone(g.peers)})
	return true
}
