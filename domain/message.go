// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable: only the store-assigned id may change.
package domain

import (
	"time"
)

type MessageKind string

const (
	MessageSent     MessageKind = "SENT"
	MessageReceived MessageKind = "RECEIVED"
)

func (k MessageKind) Valid() bool {
	return k == MessageSent || k == MessageReceived
}

// Emoticon is the code of the emoticon attached to a message.
type Emoticon int

// NoEmoticon marks a plain text message.
const NoEmoticon Emoticon = -1

// Message represents an immutable chat event owned by a single contact.
type Message struct {
	Identity
	text     string
	emoticon Emoticon
	at       time.Time
	kind     MessageKind
}

func NewMessage(text string, emoticon Emoticon, at time.Time, kind MessageKind) *Message {
	return &Message{text: text, emoticon: emoticon, at: at, kind: kind}
}

func (m *Message) Text() string {
	return m.text
}

func (m *Message) Emoticon() Emoticon {
	return m.emoticon
}

func (m *Message) HasEmoticon() bool {
	return m.emoticon != NoEmoticon
}

func (m *Message) At() time.Time {
	return m.at
}

func (m *Message) Kind() MessageKind {
	return m.kind
}

// Copy returns a transient message with the same content.
func (m *Message) Copy() *Message {
	return NewMessage(m.text, m.emoticon, m.at, m.kind)
}
