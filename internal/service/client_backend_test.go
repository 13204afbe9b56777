// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-minichat/internal/adapter"
	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/crypto"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/mock"
	"github.com/MKhiriev/go-minichat/internal/store"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// In-memory relay shared by several backends
// ─────────────────────────────────────────────

type memRelay struct {
	boxes map[string][]models.Envelope
	seen  map[string]time.Time
}

func newMemRelay() *memRelay {
	return &memRelay{boxes: make(map[string][]models.Envelope), seen: make(map[string]time.Time)}
}

// memRelayClient is the adapter of one mailbox. Like the real relay it
// forces From to the caller.
type memRelayClient struct {
	relay   *memRelay
	mailbox string
}

func (c *memRelayClient) PostEnvelopes(_ context.Context, envs []models.Envelope) error {
	c.relay.seen[c.mailbox] = time.Now()
	for _, env := range envs {
		env.From = c.mailbox
		c.relay.boxes[env.To] = append(c.relay.boxes[env.To], env)
	}
	return nil
}

func (c *memRelayClient) FetchEnvelopes(_ context.Context, _ int) ([]models.Envelope, error) {
	c.relay.seen[c.mailbox] = time.Now()
	envs := c.relay.boxes[c.mailbox]
	delete(c.relay.boxes, c.mailbox)
	return envs, nil
}

func (c *memRelayClient) Presence(_ context.Context, mailboxes []string) (map[string]time.Time, error) {
	c.relay.seen[c.mailbox] = time.Now()
	out := make(map[string]time.Time)
	for _, m := range mailboxes {
		if at, ok := c.relay.seen[m]; ok {
			out[m] = at
		}
	}
	return out, nil
}

func (c *memRelayClient) Version(context.Context) (models.VersionResponse, error) {
	return models.VersionResponse{Version: "test"}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestBackend(t *testing.T, relay *memRelay, name string) *relayBackend {
	t.Helper()

	identity, err := crypto.NewIdentity(nil)
	require.NoError(t, err)

	client := &memRelayClient{relay: relay, mailbox: identity.PublicKey().Mailbox()}
	saveData := store.NewFileSaveDataStore(filepath.Join(t.TempDir(), "savedata.json"), nil)

	b := NewRelayBackend(identity, nil, client, saveData, config.ClientWorkers{}, logger.Nop()).(*relayBackend)
	require.NoError(t, b.SetName(name))
	return b
}

func iterate(t *testing.T, backends ...*relayBackend) {
	t.Helper()
	for _, b := range backends {
		require.NoError(t, b.Iterate(context.Background()))
	}
}

func eventsOf[T models.Event](events []models.Event) []T {
	var out []T
	for _, ev := range events {
		if e, ok := ev.(T); ok {
			out = append(out, e)
		}
	}
	return out
}

// befriend makes a and b confirmed contacts and drains their events.
func befriend(t *testing.T, a, b *relayBackend) (aNumOfB, bNumOfA uint32) {
	t.Helper()

	aNumOfB, err := a.AddFriend(b.Self().Address, "hello")
	require.NoError(t, err)
	iterate(t, a, b)

	bNumOfA, err = b.AddFriendNoRequest(a.Self().PublicKey)
	require.NoError(t, err)
	iterate(t, b, a)

	a.Events()
	b.Events()
	return aNumOfB, bNumOfA
}

func requireBackendError(t *testing.T, err error, op string, code int) {
	t.Helper()
	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, op, be.Op)
	assert.Equal(t, code, be.Code)
}

// ─────────────────────────────────────────────
// Friends
// ─────────────────────────────────────────────

func TestRelayBackend_FriendRequestFlow(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")

	num, err := alice.AddFriend(bob.Self().Address, "let's talk")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), num)

	iterate(t, alice, bob)

	bobEvents := bob.Events()
	require.NotEmpty(t, bobEvents)
	assert.Equal(t, models.SelfConnectionChanged{Connection: models.ConnectionTCP}, bobEvents[0])
	requests := eventsOf[models.FriendRequest](bobEvents)
	require.Len(t, requests, 1)
	assert.Equal(t, alice.Self().PublicKey, requests[0].PublicKey)
	assert.Equal(t, "let's talk", requests[0].Message)

	bobNum, err := bob.AddFriendNoRequest(requests[0].PublicKey)
	require.NoError(t, err)
	friends := bob.Friends()
	require.Len(t, friends, 1)
	assert.Equal(t, bobNum, friends[0].Num)
	assert.Equal(t, "Alice", friends[0].Name, "name announced in the request is kept")

	iterate(t, bob, alice)

	aliceEvents := alice.Events()
	assert.Contains(t, aliceEvents, models.Event(models.FriendName{FriendNum: 0, Name: "Bob"}))
	assert.Contains(t, aliceEvents, models.Event(models.FriendConnectionChanged{FriendNum: 0, Connection: models.ConnectionTCP}))
	assert.Equal(t, "Bob", alice.Friends()[0].Name)

	require.NoError(t, alice.SendFriendMessage(0, models.MessageNormal, "hi bob"))
	iterate(t, alice, bob)

	msgs := eventsOf[models.FriendMessage](bob.Events())
	require.Len(t, msgs, 1)
	assert.Equal(t, models.FriendMessage{FriendNum: bobNum, Type: models.MessageNormal, Text: "hi bob"}, msgs[0])
}

func TestRelayBackend_MutualRequestsConfirm(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")

	_, err := alice.AddFriend(bob.Self().Address, "hi")
	require.NoError(t, err)
	_, err = bob.AddFriend(alice.Self().Address, "hi")
	require.NoError(t, err)

	iterate(t, alice, bob, alice)

	assert.Empty(t, eventsOf[models.FriendRequest](bob.Events()))
	assert.Empty(t, eventsOf[models.FriendRequest](alice.Events()))
	assert.NoError(t, alice.SendFriendMessage(0, models.MessageNormal, "x"))
	assert.NoError(t, bob.SendFriendMessage(0, models.MessageNormal, "y"))
}

func TestRelayBackend_AddFriend_Errors(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")

	_, err := alice.AddFriend("nonsense", "hi")
	requireBackendError(t, err, OpAddFriend, ErrCodeFriendAddBadChecksum)

	_, err = alice.AddFriend(bob.Self().Address, "")
	requireBackendError(t, err, OpAddFriend, ErrCodeFriendAddNoMessage)

	_, err = alice.AddFriend(bob.Self().Address, string(make([]byte, models.MaxFriendRequestLength+1)))
	requireBackendError(t, err, OpAddFriend, ErrCodeFriendAddTooLong)

	_, err = alice.AddFriend(alice.Self().Address, "me")
	requireBackendError(t, err, OpAddFriend, ErrCodeFriendAddOwnKey)

	_, err = alice.AddFriend(bob.Self().Address, "hi")
	require.NoError(t, err)
	_, err = alice.AddFriend(bob.Self().Address, "again")
	requireBackendError(t, err, OpAddFriend, ErrCodeFriendAddAlreadySent)

	_, err = alice.AddFriendNoRequest(bob.Self().PublicKey)
	requireBackendError(t, err, OpAcceptFriend, ErrCodeFriendAddAlreadySent)

	assert.Len(t, alice.Friends(), 1)
	assert.Len(t, alice.outbox, 1)
}

func TestRelayBackend_SendFriendMessage_Errors(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")

	requireBackendError(t, alice.SendFriendMessage(3, models.MessageNormal, "x"), OpSendMessage, ErrCodeSendFriendNotFound)

	num, err := alice.AddFriend(bob.Self().Address, "hi")
	require.NoError(t, err)
	requireBackendError(t, alice.SendFriendMessage(num, models.MessageNormal, "x"), OpSendMessage, ErrCodeSendFriendNotConnected)

	alice.friends[num].confirmed = true
	requireBackendError(t, alice.SendFriendMessage(num, models.MessageNormal, ""), OpSendMessage, ErrCodeSendEmpty)
	requireBackendError(t, alice.SendFriendMessage(num, models.MessageNormal, string(make([]byte, models.MaxMessageLength+1))),
		OpSendMessage, ErrCodeSendTooLong)
}

func TestRelayBackend_FriendNumbersReuseLowestFree(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")
	carol := newTestBackend(t, relay, "Carol")

	b, err := alice.AddFriend(bob.Self().Address, "hi")
	require.NoError(t, err)
	c, err := alice.AddFriend(carol.Self().Address, "hi")
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1}, []uint32{b, c})

	require.NoError(t, alice.DeleteFriend(b))
	requireBackendError(t, alice.DeleteFriend(b), OpDeleteFriend, ErrCodeFriendDeleteNotFound)

	again, err := alice.AddFriend(bob.Self().Address, "hi again")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), again)
}

func TestRelayBackend_ProfileAnnouncements(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")
	_, bobNumOfAlice := befriend(t, alice, bob)

	require.NoError(t, alice.SetName("Alicia"))
	require.NoError(t, alice.SetStatusMessage("busy"))
	iterate(t, alice, bob)

	events := bob.Events()
	assert.Contains(t, events, models.Event(models.FriendName{FriendNum: bobNumOfAlice, Name: "Alicia"}))
	assert.Contains(t, events, models.Event(models.FriendStatusMessage{FriendNum: bobNumOfAlice, StatusMessage: "busy"}))

	requireBackendError(t, alice.SetName(string(make([]byte, models.MaxNameLength+1))), OpSetName, ErrCodeSetInfoTooLong)
	requireBackendError(t, alice.SetStatusMessage(string(make([]byte, models.MaxStatusMessageLength+1))), OpSetStatus, ErrCodeSetInfoTooLong)
	assert.Equal(t, "Alicia", alice.Self().Name)
}

// ─────────────────────────────────────────────
// Groups
// ─────────────────────────────────────────────

func TestRelayBackend_GroupFlow(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")
	aliceNumOfBob, bobNumOfAlice := befriend(t, alice, bob)

	g, err := alice.NewGroup()
	require.NoError(t, err)
	require.NoError(t, alice.SetGroupTitle(g, "room"))
	require.NoError(t, alice.InviteToGroup(aliceNumOfBob, g))
	iterate(t, alice, bob)

	invites := eventsOf[models.GroupInvite](bob.Events())
	require.Len(t, invites, 1)
	assert.Equal(t, bobNumOfAlice, invites[0].FriendNum)
	assert.False(t, invites[0].AV)

	bg, err := bob.JoinGroup(invites[0].FriendNum, invites[0].Cookie)
	require.NoError(t, err)
	peers, err := bob.GroupPeers(bg)
	require.NoError(t, err)
	require.Len(t, peers, 2)
	assert.Equal(t, "Alice", peers[0].Name)
	assert.Equal(t, "Bob", peers[1].Name)
	assert.Equal(t, "room", bob.Groups()[0].Title)

	_, err = bob.JoinGroup(invites[0].FriendNum, invites[0].Cookie)
	requireBackendError(t, err, OpJoinGroup, ErrCodeJoinDuplicate)

	iterate(t, bob, alice)
	changes := eventsOf[models.GroupPeerListChanged](alice.Events())
	require.Len(t, changes, 1)
	assert.Equal(t, g, changes[0].GroupNum)
	peers, err = alice.GroupPeers(g)
	require.NoError(t, err)
	assert.Len(t, peers, 2)
	assert.Equal(t, peers, changes[0].Peers)

	require.NoError(t, bob.SendGroupMessage(bg, models.MessageNormal, "yo"))
	own := eventsOf[models.GroupMessage](bob.Events())
	require.Len(t, own, 1)
	assert.True(t, own[0].Own)
	assert.Equal(t, uint32(1), own[0].PeerNum)

	iterate(t, bob, alice)
	msgs := eventsOf[models.GroupMessage](alice.Events())
	require.Len(t, msgs, 1)
	assert.Equal(t, models.GroupMessage{GroupNum: g, PeerNum: 1, Type: models.MessageNormal, Text: "yo"}, msgs[0])

	require.NoError(t, alice.SetGroupTitle(g, "lounge"))
	iterate(t, alice, bob)
	assert.Contains(t, bob.Events(), models.Event(models.GroupTitle{GroupNum: bg, PeerNum: 0, Title: "lounge"}))

	require.NoError(t, bob.SetName("Robert"))
	iterate(t, bob, alice)
	assert.Contains(t, alice.Events(), models.Event(models.GroupPeerName{GroupNum: g, PeerNum: 1, Name: "Robert"}))

	require.NoError(t, bob.DeleteGroup(bg))
	assert.Empty(t, bob.Groups())
	iterate(t, bob, alice)
	changes = eventsOf[models.GroupPeerListChanged](alice.Events())
	require.Len(t, changes, 1)
	assert.Equal(t, []models.PeerInfo{{PublicKey: alice.Self().PublicKey, Name: "Alice"}}, changes[0].Peers)
	peers, err = alice.GroupPeers(g)
	require.NoError(t, err)
	assert.Len(t, peers, 1)
}

func TestRelayBackend_PeerListSnapshotsFollowTheBatch(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")
	carol := newTestBackend(t, relay, "Carol")
	aliceNumOfBob, _ := befriend(t, alice, bob)
	aliceNumOfCarol, _ := befriend(t, alice, carol)

	g, err := alice.NewGroup()
	require.NoError(t, err)
	require.NoError(t, alice.InviteToGroup(aliceNumOfBob, g))
	require.NoError(t, alice.InviteToGroup(aliceNumOfCarol, g))
	iterate(t, alice)

	join := func(b *relayBackend) uint32 {
		iterate(t, b)
		invites := eventsOf[models.GroupInvite](b.Events())
		require.Len(t, invites, 1)
		num, err := b.JoinGroup(invites[0].FriendNum, invites[0].Cookie)
		require.NoError(t, err)
		iterate(t, b)
		return num
	}
	bg := join(bob)
	iterate(t, alice)
	cg := join(carol)
	iterate(t, alice)
	alice.Events()

	peers, err := alice.GroupPeers(g)
	require.NoError(t, err)
	require.Len(t, peers, 3)

	// Bob leaves, then Carol says bye and leaves, all seen in one poll
	require.NoError(t, bob.DeleteGroup(bg))
	iterate(t, bob)
	require.NoError(t, carol.SendGroupMessage(cg, models.MessageNormal, "bye"))
	require.NoError(t, carol.DeleteGroup(cg))
	iterate(t, carol, alice)

	var events []models.Event
	for _, ev := range alice.Events() {
		switch ev.(type) {
		case models.GroupPeerListChanged, models.GroupMessage:
			events = append(events, ev)
		}
	}
	require.Len(t, events, 3)

	first, ok := events[0].(models.GroupPeerListChanged)
	require.True(t, ok)
	msg, ok := events[1].(models.GroupMessage)
	require.True(t, ok)
	last, ok := events[2].(models.GroupPeerListChanged)
	require.True(t, ok)

	require.Less(t, int(msg.PeerNum), len(first.Peers))
	assert.Equal(t, "Carol", first.Peers[msg.PeerNum].Name)
	assert.Equal(t, "bye", msg.Text)
	assert.Len(t, last.Peers, 1)
}

func TestRelayBackend_Group_Errors(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")
	aliceNumOfBob, _ := befriend(t, alice, bob)

	requireBackendError(t, alice.InviteToGroup(aliceNumOfBob, 9), OpInviteToGroup, ErrCodeGroupNotFound)
	requireBackendError(t, alice.SetGroupTitle(9, "x"), OpSetTitle, ErrCodeGroupNotFound)
	requireBackendError(t, alice.DeleteGroup(9), OpDeleteGroup, ErrCodeGroupNotFound)
	requireBackendError(t, alice.SendGroupMessage(9, models.MessageNormal, "x"), OpSendMessage, ErrCodeGroupNotFound)
	_, err := alice.GroupPeers(9)
	requireBackendError(t, err, OpGroupPeers, ErrCodeGroupNotFound)

	g, err := alice.NewGroup()
	require.NoError(t, err)
	requireBackendError(t, alice.InviteToGroup(42, g), OpInviteToGroup, ErrCodeInviteFailSend)
	requireBackendError(t, alice.SetGroupTitle(g, string(make([]byte, models.MaxTitleLength+1))), OpSetTitle, ErrCodeTitleInvalidLength)

	_, err = alice.JoinGroup(42, []byte("{}"))
	requireBackendError(t, err, OpJoinGroup, ErrCodeJoinFriendNotFound)
	_, err = alice.JoinGroup(aliceNumOfBob, []byte("not json"))
	requireBackendError(t, err, OpJoinGroup, ErrCodeJoinInvalidCookie)
	_, err = alice.JoinGroup(aliceNumOfBob, []byte(`{"group_id":"nope"}`))
	requireBackendError(t, err, OpJoinGroup, ErrCodeJoinInvalidCookie)
}

func TestSenderPeerNum_UnknownSenderGetsPeerCount(t *testing.T) {
	a, err := crypto.NewIdentity(nil)
	require.NoError(t, err)
	b, err := crypto.NewIdentity(nil)
	require.NoError(t, err)

	g := &group{peers: []models.PeerInfo{{PublicKey: a.PublicKey(), Name: "a"}}}
	assert.Equal(t, uint32(0), senderPeerNum(g, a.PublicKey()))
	assert.Equal(t, uint32(1), senderPeerNum(g, b.PublicKey()))
}

func TestRelayBackend_ForeignEnvelopesAreDropped(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")

	// bob is not a contact of alice, so his message must not surface
	env, err := bob.seal(alice.Self().PublicKey, models.EnvelopeMessage, models.EnvelopePayload{Text: "spam"})
	require.NoError(t, err)
	bob.outbox = append(bob.outbox, env)

	// garbage that cannot be opened
	relay.boxes[alice.Self().PublicKey.Mailbox()] = append(relay.boxes[alice.Self().PublicKey.Mailbox()],
		models.Envelope{ID: "x", From: "zz", To: alice.Self().PublicKey.Mailbox(), Kind: models.EnvelopeMessage})

	iterate(t, bob, alice)
	assert.Empty(t, eventsOf[models.FriendMessage](alice.Events()))
}

// ─────────────────────────────────────────────
// Iterate against a mocked relay
// ─────────────────────────────────────────────

func newMockedBackend(t *testing.T, relay adapter.RelayAdapter, saveData store.SaveDataStore, poll time.Duration) *relayBackend {
	t.Helper()
	identity, err := crypto.NewIdentity(nil)
	require.NoError(t, err)
	return NewRelayBackend(identity, nil, relay, saveData, config.ClientWorkers{PollInterval: poll}, logger.Nop()).(*relayBackend)
}

func TestRelayBackend_Iterate_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay := mock.NewMockRelayAdapter(ctrl)
	b := newMockedBackend(t, relay, nil, time.Second)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	relay.EXPECT().FetchEnvelopes(gomock.Any(), 0).Return(nil, nil).Times(2)

	require.NoError(t, b.Iterate(context.Background()))
	now = now.Add(500 * time.Millisecond)
	require.NoError(t, b.Iterate(context.Background()))
	now = now.Add(500 * time.Millisecond)
	require.NoError(t, b.Iterate(context.Background()))

	assert.Equal(t, backendIterationInterval, b.IterationInterval())
}

func TestRelayBackend_Iterate_ConnectionLoss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay := mock.NewMockRelayAdapter(ctrl)
	b := newMockedBackend(t, relay, nil, 0)
	peer, err := crypto.NewIdentity(nil)
	require.NoError(t, err)
	b.friends[0] = &friend{num: 0, pk: peer.PublicKey(), confirmed: true}

	gomock.InOrder(
		relay.EXPECT().FetchEnvelopes(gomock.Any(), 0).Return(nil, nil),
		relay.EXPECT().Presence(gomock.Any(), []string{peer.PublicKey().Mailbox()}).
			Return(map[string]time.Time{peer.PublicKey().Mailbox(): time.Now()}, nil),
		relay.EXPECT().FetchEnvelopes(gomock.Any(), 0).Return(nil, adapter.ErrServiceUnavailable),
	)

	require.NoError(t, b.Iterate(context.Background()))
	assert.Equal(t, []models.Event{
		models.SelfConnectionChanged{Connection: models.ConnectionTCP},
		models.FriendConnectionChanged{FriendNum: 0, Connection: models.ConnectionTCP},
	}, b.Events())

	err = b.Iterate(context.Background())
	require.ErrorIs(t, err, adapter.ErrServiceUnavailable)
	assert.Equal(t, []models.Event{
		models.SelfConnectionChanged{Connection: models.ConnectionNone},
		models.FriendConnectionChanged{FriendNum: 0, Connection: models.ConnectionNone},
	}, b.Events())
	assert.Equal(t, models.ConnectionNone, b.Self().Connection)
}

func TestRelayBackend_Iterate_OutboxRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay := mock.NewMockRelayAdapter(ctrl)
	b := newMockedBackend(t, relay, nil, 0)
	peer, err := crypto.NewIdentity(nil)
	require.NoError(t, err)

	_, err = b.AddFriend(peer.Address(), "hi")
	require.NoError(t, err)
	require.Len(t, b.outbox, 1)
	queued := b.outbox

	gomock.InOrder(
		relay.EXPECT().PostEnvelopes(gomock.Any(), queued).Return(adapter.ErrBadGateway),
		relay.EXPECT().PostEnvelopes(gomock.Any(), queued).Return(nil),
		relay.EXPECT().FetchEnvelopes(gomock.Any(), 0).Return(nil, nil),
	)

	require.ErrorIs(t, b.Iterate(context.Background()), adapter.ErrBadGateway)
	assert.Len(t, b.outbox, 1, "transient failures keep the outbox")

	require.NoError(t, b.Iterate(context.Background()))
	assert.Empty(t, b.outbox)
}

func TestRelayBackend_Iterate_RejectedOutboxIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	relay := mock.NewMockRelayAdapter(ctrl)
	b := newMockedBackend(t, relay, nil, 0)
	peer, err := crypto.NewIdentity(nil)
	require.NoError(t, err)

	_, err = b.AddFriend(peer.Address(), "hi")
	require.NoError(t, err)

	relay.EXPECT().PostEnvelopes(gomock.Any(), gomock.Any()).Return(adapter.ErrBadRequest)
	relay.EXPECT().FetchEnvelopes(gomock.Any(), 0).Return(nil, nil)

	require.NoError(t, b.Iterate(context.Background()))
	assert.Empty(t, b.outbox)
}

// ─────────────────────────────────────────────
// Persistence
// ─────────────────────────────────────────────

func TestRelayBackend_Save_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saveData := mock.NewMockSaveDataStore(ctrl)
	saveData.EXPECT().Save(gomock.Any()).Return(errors.New("disk full"))
	saveData.EXPECT().Path().Return("savedata.json").AnyTimes()

	b := newMockedBackend(t, nil, saveData, 0)
	requireBackendError(t, b.Save(), OpSave, ErrCodeSaveFailed)
}

func TestRelayBackend_SaveAndRestore(t *testing.T) {
	relay := newMemRelay()
	alice := newTestBackend(t, relay, "Alice")
	bob := newTestBackend(t, relay, "Bob")
	befriend(t, alice, bob)
	g, err := alice.NewGroup()
	require.NoError(t, err)
	require.NoError(t, alice.SetGroupTitle(g, "room"))
	require.NoError(t, alice.SetStatusMessage("around"))

	require.NoError(t, alice.Save())
	sd, err := alice.saveData.Load()
	require.NoError(t, err)

	identity, err := crypto.RestoreIdentity(sd.BoxSecretKey, sd.SignSeed)
	require.NoError(t, err)
	restored := NewRelayBackend(identity, sd, nil, alice.saveData, config.ClientWorkers{}, logger.Nop())

	assert.Equal(t, alice.Self().Address, restored.Self().Address)
	assert.Equal(t, "Alice", restored.Self().Name)
	assert.Equal(t, "around", restored.Self().StatusMessage)

	want := alice.Friends()
	for i := range want {
		want[i].Connection = models.ConnectionNone
	}
	assert.Equal(t, want, restored.Friends())
	assert.Equal(t, alice.Groups(), restored.Groups())
}

func TestLoadProfile(t *testing.T) {
	t.Run("creates a profile when none exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		saveData := mock.NewMockSaveDataStore(ctrl)
		saveData.EXPECT().Load().Return(nil, store.ErrSaveDataNotFound)
		saveData.EXPECT().Path().Return("savedata.json").AnyTimes()

		var saved *models.SaveData
		saveData.EXPECT().Save(gomock.Any()).DoAndReturn(func(sd *models.SaveData) error {
			saved = sd
			return nil
		})

		identity, sd, err := LoadProfile(saveData, logger.Nop())
		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Same(t, saved, sd)
		assert.Equal(t, DefaultName, sd.Name)
		assert.Equal(t, identity.BoxSecret(), sd.BoxSecretKey)
	})

	t.Run("restores an existing identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		original, err := crypto.NewIdentity(nil)
		require.NoError(t, err)

		saveData := mock.NewMockSaveDataStore(ctrl)
		saveData.EXPECT().Load().Return(&models.SaveData{BoxSecretKey: original.BoxSecret(), SignSeed: original.SignSeed()}, nil)

		identity, _, err := LoadProfile(saveData, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, original.Address(), identity.Address())
	})

	t.Run("load failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		saveData := mock.NewMockSaveDataStore(ctrl)
		saveData.EXPECT().Load().Return(nil, store.ErrSaveDataEncrypted)

		_, _, err := LoadProfile(saveData, logger.Nop())
		assert.ErrorIs(t, err, store.ErrSaveDataEncrypted)
	})

	t.Run("bad key material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		saveData := mock.NewMockSaveDataStore(ctrl)
		saveData.EXPECT().Load().Return(&models.SaveData{BoxSecretKey: []byte{1}}, nil)
		saveData.EXPECT().Path().Return("savedata.json")

		_, _, err := LoadProfile(saveData, logger.Nop())
		assert.ErrorIs(t, err, crypto.ErrInvalidKey)
	})
}

func TestNewTokenSource(t *testing.T) {
	identity, err := crypto.NewIdentity(nil)
	require.NoError(t, err)

	tokens := NewTokenSource(identity, config.ClientApp{TokenIssuer: "relay", TokenDuration: time.Minute})
	token, err := tokens()
	require.NoError(t, err)

	claims, err := utils.ValidateIdentityToken(token, "relay", 0)
	require.NoError(t, err)
	assert.Equal(t, identity.PublicKey().Mailbox(), claims.Subject)
}
