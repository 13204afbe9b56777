// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"slices"

	"github.com/MKhiriev/go-minichat/models"
)

// Session is the behaviour shared by contacts and groups.
type Session interface {
	// Index returns the combined index addressing the session.
	Index() Index
	// DisplayName returns the contact name or the group title.
	DisplayName() string
	// History returns the chat history owned by the session.
	History() *History
}

// Contact is a direct conversation with one contact.
type Contact struct {
	Num           uint32
	Name          string
	StatusMessage string
	Connection    models.Connection
	PublicKey     models.PublicKey

	hist *History
}

// Index implements [Session].
func (c *Contact) Index() Index { return Encode(c.Num, KindContact) }

// DisplayName implements [Session].
func (c *Contact) DisplayName() string { return c.Name }

// History implements [Session].
func (c *Contact) History() *History { return c.hist }

// Group is a group conversation.
type Group struct {
	Num   uint32
	Title string
	Peers []models.PeerInfo

	hist *History
}

// Index implements [Session].
func (g *Group) Index() Index { return Encode(g.Num, KindGroup) }

// DisplayName implements [Session].
func (g *Group) DisplayName() string { return g.Title }

// History implements [Session].
func (g *Group) History() *History { return g.hist }

// Peer returns the peer with the given number.
func (g *Group) Peer(peerNum uint32) (*models.PeerInfo, error) {
	if int64(peerNum) >= int64(len(g.Peers)) {
		return nil, ErrPeerNotFound
	}
	return &g.Peers[peerNum], nil
}

// Directory keeps the contacts and groups known to the client. Newly added
// sessions are listed first. Lookups are linear scans.
type Directory struct {
	contacts []*Contact
	groups   []*Group
}

// NewDirectory returns an empty directory.
func NewDirectory() *Directory {
	return &Directory{}
}

// AddContact inserts a new contact with the given number.
func (d *Directory) AddContact(num uint32) (*Contact, error) {
	if d.Contact(num) != nil {
		return nil, ErrSessionExists
	}

	c := &Contact{Num: num, Connection: models.ConnectionNone, hist: NewHistory()}
	d.contacts = slices.Insert(d.contacts, 0, c)
	return c, nil
}

// RemoveContact deletes the contact and its history.
func (d *Directory) RemoveContact(num uint32) error {
	i := slices.IndexFunc(d.contacts, func(c *Contact) bool { return c.Num == num })
	if i < 0 {
		return ErrSessionNotFound
	}

	d.contacts[i].hist.Clear()
	d.contacts = slices.Delete(d.contacts, i, i+1)
	return nil
}

// Contact returns the contact with the given number or nil.
func (d *Directory) Contact(num uint32) *Contact {
	for _, c := range d.contacts {
		if c.Num == num {
			return c
		}
	}
	return nil
}

// Contacts lists contacts, most recently added first.
func (d *Directory) Contacts() []*Contact {
	return d.contacts
}

// AddGroup inserts a new group with the given number.
func (d *Directory) AddGroup(num uint32) (*Group, error) {
	if d.Group(num) != nil {
		return nil, ErrSessionExists
	}

	g := &Group{Num: num, hist: NewHistory()}
	d.groups = slices.Insert(d.groups, 0, g)
	return g, nil
}

// RemoveGroup deletes the group together with its peers and history.
func (d *Directory) RemoveGroup(num uint32) error {
	i := slices.IndexFunc(d.groups, func(g *Group) bool { return g.Num == num })
	if i < 0 {
		return ErrSessionNotFound
	}

	g := d.groups[i]
	g.hist.Clear()
	g.Peers = nil
	d.groups = slices.Delete(d.groups, i, i+1)
	return nil
}

// Group returns the group with the given number or nil.
func (d *Directory) Group(num uint32) *Group {
	for _, g := range d.groups {
		if g.Num == num {
			return g
		}
	}
	return nil
}

// Groups lists groups, most recently added first.
func (d *Directory) Groups() []*Group {
	return d.groups
}

// Find resolves a combined index. The kind is checked before the number is
// compared, so contact 3 and group 3 never shadow each other.
func (d *Directory) Find(idx Index) (Session, bool) {
	if !idx.Valid() {
		return nil, false
	}

	num, kind := idx.Decode()
	switch kind {
	case KindContact:
		if c := d.Contact(num); c != nil {
			return c, true
		}
	case KindGroup:
		if g := d.Group(num); g != nil {
			return g, true
		}
	}
	return nil, false
}

// Remove deletes the session addressed by a combined index.
func (d *Directory) Remove(idx Index) error {
	if !idx.Valid() {
		return ErrSessionNotFound
	}

	num, kind := idx.Decode()
	if kind == KindGroup {
		return d.RemoveGroup(num)
	}
	return d.RemoveContact(num)
}

// List returns every session, contacts first.
func (d *Directory) List() []Session {
	out := make([]Session, 0, len(d.contacts)+len(d.groups))
	for _, c := range d.contacts {
		out = append(out, c)
	}
	for _, g := range d.groups {
		out = append(out, g)
	}
	return out
}
