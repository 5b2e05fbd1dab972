// Package domain contains core concepts of the chat system.
// This file defines the Contact variants a user can talk to.
package domain

type ContactKind int

const (
	KindIndividual ContactKind = iota + 1
	KindGroup
)

func (k ContactKind) String() string {
	switch k {
	case KindIndividual:
		return "individual"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Contact is implemented by IndividualContact and Group only.
type Contact interface {
	ID() int64
	SetID(id int64)
	Persisted() bool
	Name() string
	Messages() []*Message
	AddMessage(message *Message)
	Kind() ContactKind
	contact()
}

// conversation holds what both contact kinds share.
type conversation struct {
	Identity
	name     string
	messages []*Message
}

func (c *conversation) Name() string {
	return c.name
}

func (c *conversation) Rename(name string) {
	c.name = name
}

// Messages returns the chronological message list. The slice must not be modified.
func (c *conversation) Messages() []*Message {
	return c.messages
}

func (c *conversation) appendMessage(message *Message) {
	c.messages = append(c.messages, message)
}

func (c *conversation) contact() {}
