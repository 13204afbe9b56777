// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"slices"
	"unicode/utf8"

	"github.com/MKhiriev/go-minichat/internal/crypto"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
	"github.com/google/uuid"
)

func (b *relayBackend) SetName(name string) error {
	if len(name) > models.MaxNameLength {
		return backendError(OpSetName, ErrCodeSetInfoTooLong)
	}

	b.name = name
	self := b.identity.PublicKey()
	for _, g := range b.groups {
		if i := g.peerIndex(self); i >= 0 {
			g.peers[i].Name = name
		}
	}

	return b.announceProfile()
}

func (b *relayBackend) SetStatusMessage(status string) error {
	if len(status) > models.MaxStatusMessageLength {
		return backendError(OpSetStatus, ErrCodeSetInfoTooLong)
	}

	b.statusMessage = status
	return b.announceProfile()
}

func (b *relayBackend) profilePayload() models.EnvelopePayload {
	return models.EnvelopePayload{Name: b.name, StatusMessage: b.statusMessage}
}

func (b *relayBackend) announceProfile() error {
	envs, err := b.sealAll(b.audience(), models.EnvelopeProfile, b.profilePayload())
	if err != nil {
		return err
	}
	b.outbox = append(b.outbox, envs...)
	return nil
}

func (b *relayBackend) AddFriend(address, message string) (uint32, error) {
	pk, _, err := crypto.ParseAddress(address)
	if err != nil {
		b.logger.Debug().Str("func", "*relayBackend.AddFriend").Err(err).Msg("invalid address")
		return 0, backendError(OpAddFriend, ErrCodeFriendAddBadChecksum)
	}

	switch {
	case message == "":
		return 0, backendError(OpAddFriend, ErrCodeFriendAddNoMessage)
	case len(message) > models.MaxFriendRequestLength:
		return 0, backendError(OpAddFriend, ErrCodeFriendAddTooLong)
	case pk == b.identity.PublicKey():
		return 0, backendError(OpAddFriend, ErrCodeFriendAddOwnKey)
	case b.friendByKey(pk) != nil:
		return 0, backendError(OpAddFriend, ErrCodeFriendAddAlreadySent)
	}

	payload := b.profilePayload()
	payload.Text = message
	env, err := b.seal(pk, models.EnvelopeFriendRequest, payload)
	if err != nil {
		return 0, err
	}

	num := lowestFree(b.friends)
	b.friends[num] = &friend{num: num, pk: pk}
	b.outbox = append(b.outbox, env)

	return num, nil
}

func (b *relayBackend) AddFriendNoRequest(pk models.PublicKey) (uint32, error) {
	switch {
	case pk == b.identity.PublicKey():
		return 0, backendError(OpAcceptFriend, ErrCodeFriendAddOwnKey)
	case b.friendByKey(pk) != nil:
		return 0, backendError(OpAcceptFriend, ErrCodeFriendAddAlreadySent)
	}

	env, err := b.seal(pk, models.EnvelopeFriendAccept, b.profilePayload())
	if err != nil {
		return 0, err
	}

	num := lowestFree(b.friends)
	f := &friend{num: num, pk: pk, confirmed: true}
	if p, ok := b.requestProfiles[pk]; ok {
		f.name, f.statusMessage = p.Name, p.StatusMessage
		delete(b.requestProfiles, pk)
	}
	b.friends[num] = f
	b.outbox = append(b.outbox, env)

	return num, nil
}

func (b *relayBackend) DeleteFriend(friendNum uint32) error {
	if _, ok := b.friends[friendNum]; !ok {
		return backendError(OpDeleteFriend, ErrCodeFriendDeleteNotFound)
	}
	delete(b.friends, friendNum)
	return nil
}

func (b *relayBackend) SendFriendMessage(friendNum uint32, typ models.MessageType, text string) error {
	f, ok := b.friends[friendNum]
	switch {
	case !ok:
		return backendError(OpSendMessage, ErrCodeSendFriendNotFound)
	case !f.confirmed:
		return backendError(OpSendMessage, ErrCodeSendFriendNotConnected)
	case text == "":
		return backendError(OpSendMessage, ErrCodeSendEmpty)
	case len(text) > models.MaxMessageLength:
		return backendError(OpSendMessage, ErrCodeSendTooLong)
	}

	env, err := b.seal(f.pk, models.EnvelopeMessage, models.EnvelopePayload{Type: typ, Text: text})
	if err != nil {
		return err
	}
	b.outbox = append(b.outbox, env)
	return nil
}

func (b *relayBackend) NewGroup() (uint32, error) {
	num := lowestFree(b.groups)
	b.groups[num] = &group{
		num:   num,
		id:    uuid.NewString(),
		peers: []models.PeerInfo{{PublicKey: b.identity.PublicKey(), Name: b.name}},
	}
	return num, nil
}

func (b *relayBackend) JoinGroup(friendNum uint32, cookie []byte) (uint32, error) {
	if f, ok := b.friends[friendNum]; !ok || !f.confirmed {
		return 0, backendError(OpJoinGroup, ErrCodeJoinFriendNotFound)
	}

	var c models.GroupCookie
	if err := json.Unmarshal(cookie, &c); err != nil || !utils.IsUUID(c.GroupID) || !utf8.ValidString(c.Title) {
		return 0, backendError(OpJoinGroup, ErrCodeJoinInvalidCookie)
	}
	if b.groupByID(c.GroupID) != nil {
		return 0, backendError(OpJoinGroup, ErrCodeJoinDuplicate)
	}

	self := b.identity.PublicKey()
	peers := slices.DeleteFunc(slices.Clone(c.Peers), func(p models.PeerInfo) bool { return p.PublicKey == self })
	g := &group{
		id:    c.GroupID,
		title: c.Title,
		peers: append(peers, models.PeerInfo{PublicKey: self, Name: b.name}),
	}

	envs, err := b.sealAll(b.otherPeers(g), models.EnvelopeGroupJoin, models.EnvelopePayload{GroupID: g.id, Name: b.name})
	if err != nil {
		b.logger.Err(err).Str("func", "*relayBackend.JoinGroup").Msg("error sealing join announcements")
		return 0, backendError(OpJoinGroup, ErrCodeJoinFailSend)
	}

	g.num = lowestFree(b.groups)
	b.groups[g.num] = g
	b.outbox = append(b.outbox, envs...)

	return g.num, nil
}

func (b *relayBackend) InviteToGroup(friendNum, groupNum uint32) error {
	g, ok := b.groups[groupNum]
	if !ok {
		return backendError(OpInviteToGroup, ErrCodeGroupNotFound)
	}
	f, ok := b.friends[friendNum]
	if !ok {
		return backendError(OpInviteToGroup, ErrCodeInviteFailSend)
	}
	if !f.confirmed {
		return backendError(OpInviteToGroup, ErrCodeInviteNoConnection)
	}

	cookie, err := json.Marshal(models.GroupCookie{GroupID: g.id, Title: g.title, Peers: g.peers})
	if err != nil {
		return backendError(OpInviteToGroup, ErrCodeInviteFailSend)
	}

	env, err := b.seal(f.pk, models.EnvelopeGroupInvite, models.EnvelopePayload{GroupID: g.id, Title: g.title, Cookie: cookie})
	if err != nil {
		b.logger.Err(err).Str("func", "*relayBackend.InviteToGroup").Msg("error sealing invite")
		return backendError(OpInviteToGroup, ErrCodeInviteFailSend)
	}
	b.outbox = append(b.outbox, env)
	return nil
}

func (b *relayBackend) SetGroupTitle(groupNum uint32, title string) error {
	g, ok := b.groups[groupNum]
	if !ok {
		return backendError(OpSetTitle, ErrCodeGroupNotFound)
	}
	if len(title) > models.MaxTitleLength {
		return backendError(OpSetTitle, ErrCodeTitleInvalidLength)
	}

	envs, err := b.sealAll(b.otherPeers(g), models.EnvelopeGroupTitle, models.EnvelopePayload{GroupID: g.id, Title: title})
	if err != nil {
		b.logger.Err(err).Str("func", "*relayBackend.SetGroupTitle").Msg("error sealing title")
		return backendError(OpSetTitle, ErrCodeTitleFailSend)
	}

	g.title = title
	b.outbox = append(b.outbox, envs...)
	return nil
}

func (b *relayBackend) DeleteGroup(groupNum uint32) error {
	g, ok := b.groups[groupNum]
	if !ok {
		return backendError(OpDeleteGroup, ErrCodeGroupNotFound)
	}

	envs, err := b.sealAll(b.otherPeers(g), models.EnvelopeGroupLeave, models.EnvelopePayload{GroupID: g.id})
	if err != nil {
		b.logger.Err(err).Str("func", "*relayBackend.DeleteGroup").Msg("error sealing leave")
		return backendError(OpDeleteGroup, ErrCodeGroupDeleteFailSend)
	}

	delete(b.groups, groupNum)
	b.outbox = append(b.outbox, envs...)
	return nil
}

func (b *relayBackend) GroupPeers(groupNum uint32) ([]models.PeerInfo, error) {
	g, ok := b.groups[groupNum]
	if !ok {
		return nil, backendError(OpGroupPeers, ErrCodeGroupNotFound)
	}
	return slices.Clone(g.peers), nil
}

func (b *relayBackend) SendGroupMessage(groupNum uint32, typ models.MessageType, text string) error {
	g, ok := b.groups[groupNum]
	if !ok {
		return backendError(OpSendMessage, ErrCodeGroupNotFound)
	}
	if len(text) > models.MaxMessageLength {
		return backendError(OpSendMessage, ErrCodeGroupSendTooLong)
	}

	envs, err := b.sealAll(b.otherPeers(g), models.EnvelopeGroupMessage, models.EnvelopePayload{GroupID: g.id, Type: typ, Text: text})
	if err != nil {
		b.logger.Err(err).Str("func", "*relayBackend.SendGroupMessage").Msg("error sealing group message")
		return backendError(OpSendMessage, ErrCodeGroupSendFailSend)
	}
	b.outbox = append(b.outbox, envs...)

	// the local node sees its own messages like every other peer does
	b.emit(models.GroupMessage{
		GroupNum: g.num,
		PeerNum:  uint32(g.peerIndex(b.identity.PublicKey())),
		Own:      true,
		Type:     typ,
		Text:     text,
	})
	return nil
}
