package domain

import "github.com/samber/lo"

// Group is a named set of contacts sharing one conversation.
type Group struct {
	conversation
	members []Contact
}

func NewGroup(name string, members ...Contact) *Group {
	g := &Group{conversation: conversation{name: name}}
	for _, m := range members {
		g.AddMember(m)
	}
	return g
}

// Members returns the members in insertion order. The slice must not be modified.
func (g *Group) Members() []Contact {
	return g.members
}

func (g *Group) HasMember(contact Contact) bool {
	return lo.Contains(g.members, contact)
}

// AddMember adds contact unless it is nil, already a member or the group itself.
func (g *Group) AddMember(contact Contact) bool {
	if contact == nil || contact == Contact(g) || g.HasMember(contact) {
		return false
	}
	g.members = append(g.members, contact)
	return true
}

// RemoveMember refuses to remove the last member.
func (g *Group) RemoveMember(contact Contact) bool {
	if !g.HasMember(contact) || len(g.members) == 1 {
		return false
	}
	g.members = lo.Without(g.members, contact)
	return true
}

// AddMessage records the message on the group and appends a copy to every member.
// Copies are transient until their owner is updated through the mapper.
func (g *Group) AddMessage(message *Message) {
	g.appendMessage(message)
	for _, m := range g.members {
		m.AddMessage(message.Copy())
	}
}

// AttachMessage records the message on the group only, without broadcasting it.
func (g *Group) AttachMessage(message *Message) {
	g.appendMessage(message)
}

func (g *Group) Kind() ContactKind {
	return KindGroup
}
