// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/MKhiriev/go-minichat/internal/adapter"
	"github.com/MKhiriev/go-minichat/internal/config"
	"github.com/MKhiriev/go-minichat/internal/crypto"
	"github.com/MKhiriev/go-minichat/internal/logger"
	"github.com/MKhiriev/go-minichat/internal/store"
	"github.com/MKhiriev/go-minichat/internal/utils"
	"github.com/MKhiriev/go-minichat/models"
)

const (
	// DefaultName is the display name of a freshly created profile.
	DefaultName = "Minichat"

	saveDataVersion = 1

	backendIterationInterval = 50 * time.Millisecond
)

type friend struct {
	num           uint32
	pk            models.PublicKey
	name          string
	statusMessage string
	connection    models.Connection
	confirmed     bool
}

type group struct {
	num   uint32
	id    string
	title string
	peers []models.PeerInfo
}

func (g *group) peerIndex(pk models.PublicKey) int {
	return slices.IndexFunc(g.peers, func(p models.PeerInfo) bool { return p.PublicKey == pk })
}

// relayBackend implements Backend on top of a store-and-forward relay.
// Contacts and groups live in memory; everything addressed to other nodes
// is sealed into envelopes and kept in the outbox until the next Iterate.
type relayBackend struct {
	identity *crypto.Identity
	relay    adapter.RelayAdapter
	saveData store.SaveDataStore
	ids      *utils.UUIDGenerator
	logger   *logger.Logger

	pollInterval time.Duration
	now          func() time.Time
	lastPoll     time.Time

	name          string
	statusMessage string
	connection    models.Connection

	friends map[uint32]*friend
	groups  map[uint32]*group

	// profiles announced by senders of friend requests, used to name the
	// contact once the request is accepted
	requestProfiles map[models.PublicKey]models.EnvelopePayload

	outbox []models.Envelope
	events []models.Event
}

// NewRelayBackend builds a Backend for identity with the state restored from
// sd. relay carries envelopes, saveData persists the state on Save.
func NewRelayBackend(identity *crypto.Identity, sd *models.SaveData, relay adapter.RelayAdapter,
	saveData store.SaveDataStore, cfg config.ClientWorkers, logger *logger.Logger) Backend {
	b := &relayBackend{
		identity:        identity,
		relay:           relay,
		saveData:        saveData,
		ids:             utils.NewUUIDGenerator(),
		logger:          logger,
		pollInterval:    cfg.PollInterval,
		now:             time.Now,
		name:            DefaultName,
		friends:         make(map[uint32]*friend),
		groups:          make(map[uint32]*group),
		requestProfiles: make(map[models.PublicKey]models.EnvelopePayload),
	}
	if sd != nil {
		b.restore(sd)
	}

	return b
}

// LoadProfile loads the savedata behind saveData and restores the identity
// it holds. When no savedata exists yet a new identity is generated and
// saved right away, so the address survives a crash before the first Save.
func LoadProfile(saveData store.SaveDataStore, logger *logger.Logger) (*crypto.Identity, *models.SaveData, error) {
	sd, err := saveData.Load()
	if err == nil {
		identity, err := crypto.RestoreIdentity(sd.BoxSecretKey, sd.SignSeed)
		if err != nil {
			return nil, nil, fmt.Errorf("restore identity from %s: %w", saveData.Path(), err)
		}
		return identity, sd, nil
	}
	if !errors.Is(err, store.ErrSaveDataNotFound) {
		return nil, nil, fmt.Errorf("load savedata: %w", err)
	}

	identity, err := crypto.NewIdentity(nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create identity: %w", err)
	}

	sd = &models.SaveData{
		Version:      saveDataVersion,
		BoxSecretKey: identity.BoxSecret(),
		SignSeed:     identity.SignSeed(),
		Name:         DefaultName,
	}
	if err = saveData.Save(sd); err != nil {
		return nil, nil, fmt.Errorf("save new profile: %w", err)
	}
	logger.Info().Str("func", "LoadProfile").Str("path", saveData.Path()).Msg("created new profile")

	return identity, sd, nil
}

// NewTokenSource returns a token source signing a fresh identity token for
// every relay request.
func NewTokenSource(identity *crypto.Identity, cfg config.ClientApp) adapter.TokenSource {
	mailbox := identity.PublicKey().Mailbox()
	return func() (string, error) {
		return utils.GenerateIdentityToken(cfg.TokenIssuer, mailbox, cfg.TokenDuration, identity.SignKey())
	}
}

func (b *relayBackend) IterationInterval() time.Duration {
	return backendIterationInterval
}

func (b *relayBackend) Events() []models.Event {
	events := b.events
	b.events = nil
	return events
}

func (b *relayBackend) Self() models.SelfInfo {
	return models.SelfInfo{
		Name:          b.name,
		StatusMessage: b.statusMessage,
		PublicKey:     b.identity.PublicKey(),
		Address:       b.identity.Address(),
		Connection:    b.connection,
	}
}

func (b *relayBackend) Friends() []models.FriendInfo {
	friends := make([]models.FriendInfo, 0, len(b.friends))
	for _, num := range slices.Sorted(maps.Keys(b.friends)) {
		f := b.friends[num]
		friends = append(friends, models.FriendInfo{
			Num:           f.num,
			Name:          f.name,
			StatusMessage: f.statusMessage,
			PublicKey:     f.pk,
			Connection:    f.connection,
		})
	}
	return friends
}

func (b *relayBackend) Groups() []models.GroupInfo {
	groups := make([]models.GroupInfo, 0, len(b.groups))
	for _, num := range slices.Sorted(maps.Keys(b.groups)) {
		g := b.groups[num]
		groups = append(groups, models.GroupInfo{Num: g.num, Title: g.title, Peers: slices.Clone(g.peers)})
	}
	return groups
}

func (b *relayBackend) Save() error {
	if err := b.saveData.Save(b.snapshot()); err != nil {
		b.logger.Err(err).Str("func", "*relayBackend.Save").Str("path", b.saveData.Path()).Msg("error saving savedata")
		return backendError(OpSave, ErrCodeSaveFailed)
	}
	return nil
}

func (b *relayBackend) snapshot() *models.SaveData {
	sd := &models.SaveData{
		Version:       saveDataVersion,
		BoxSecretKey:  b.identity.BoxSecret(),
		SignSeed:      b.identity.SignSeed(),
		Name:          b.name,
		StatusMessage: b.statusMessage,
		Friends:       make([]models.SavedFriend, 0, len(b.friends)),
		Groups:        make([]models.SavedGroup, 0, len(b.groups)),
	}
	for _, num := range slices.Sorted(maps.Keys(b.friends)) {
		f := b.friends[num]
		sd.Friends = append(sd.Friends, models.SavedFriend{
			Num:           f.num,
			PublicKey:     f.pk,
			Name:          f.name,
			StatusMessage: f.statusMessage,
			Confirmed:     f.confirmed,
		})
	}
	for _, num := range slices.Sorted(maps.Keys(b.groups)) {
		g := b.groups[num]
		sd.Groups = append(sd.Groups, models.SavedGroup{Num: g.num, ID: g.id, Title: g.title, Peers: slices.Clone(g.peers)})
	}
	return sd
}

func (b *relayBackend) restore(sd *models.SaveData) {
	if sd.Name != "" {
		b.name = sd.Name
	}
	b.statusMessage = sd.StatusMessage

	for _, f := range sd.Friends {
		b.friends[f.Num] = &friend{
			num:           f.Num,
			pk:            f.PublicKey,
			name:          f.Name,
			statusMessage: f.StatusMessage,
			confirmed:     f.Confirmed,
		}
	}

	self := b.identity.PublicKey()
	for _, sg := range sd.Groups {
		g := &group{num: sg.Num, id: sg.ID, title: sg.Title, peers: slices.Clone(sg.Peers)}
		if i := g.peerIndex(self); i >= 0 {
			g.peers[i].Name = b.name
		} else {
			g.peers = append(g.peers, models.PeerInfo{PublicKey: self, Name: b.name})
		}
		b.groups[g.num] = g
	}
}

func (b *relayBackend) emit(ev models.Event) {
	b.events = append(b.events, ev)
}

func (b *relayBackend) friendByKey(pk models.PublicKey) *friend {
	for _, f := range b.friends {
		if f.pk == pk {
			return f
		}
	}
	return nil
}

func (b *relayBackend) groupByID(id string) *group {
	for _, g := range b.groups {
		if g.id == id {
			return g
		}
	}
	return nil
}

// seal encrypts payload for to and wraps it into an envelope. The envelope
// is not queued.
func (b *relayBackend) seal(to models.PublicKey, kind models.EnvelopeKind, payload models.EnvelopePayload) (models.Envelope, error) {
	plain, err := json.Marshal(payload)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("encode %s payload: %w", kind, err)
	}

	nonce, sealed, err := b.identity.Seal(plain, to)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("seal %s payload: %w", kind, err)
	}

	return models.Envelope{
		ID:      b.ids.Generate(),
		From:    b.identity.PublicKey().Mailbox(),
		To:      to.Mailbox(),
		Kind:    kind,
		Nonce:   nonce,
		Payload: sealed,
	}, nil
}

// sealAll seals one envelope per recipient. Either all envelopes are
// returned or none.
func (b *relayBackend) sealAll(to []models.PublicKey, kind models.EnvelopeKind, payload models.EnvelopePayload) ([]models.Envelope, error) {
	envs := make([]models.Envelope, 0, len(to))
	for _, pk := range to {
		env, err := b.seal(pk, kind, payload)
		if err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return envs, nil
}

// otherPeers returns the keys of all group peers except the local node.
func (b *relayBackend) otherPeers(g *group) []models.PublicKey {
	self := b.identity.PublicKey()
	keys := make([]models.PublicKey, 0, len(g.peers))
	for _, p := range g.peers {
		if p.PublicKey != self {
			keys = append(keys, p.PublicKey)
		}
	}
	return keys
}

// audience returns every confirmed contact and group peer once, ordered by
// key so that the outbox is deterministic.
func (b *relayBackend) audience() []models.PublicKey {
	set := make(map[models.PublicKey]struct{})
	for _, f := range b.friends {
		if f.confirmed {
			set[f.pk] = struct{}{}
		}
	}
	for _, g := range b.groups {
		for _, pk := range b.otherPeers(g) {
			set[pk] = struct{}{}
		}
	}

	keys := slices.Collect(maps.Keys(set))
	slices.SortFunc(keys, func(a, b models.PublicKey) int { return cmp.Compare(a.Mailbox(), b.Mailbox()) })
	return keys
}

// lowestFree returns the smallest number not used as a key of m.
func lowestFree[T any](m map[uint32]T) uint32 {
	var n uint32
	for {
		if _, ok := m[n]; !ok {
			return n
		}
		n++
	}
}
