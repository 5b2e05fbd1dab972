// Package domain contains core concepts of the chat system.
// This file defines the User aggregate root and its contact list.
package domain

import (
	"time"

	"github.com/samber/lo"
)

// User is an account. Phone is the natural login key and is unique
// among persisted users.
type User struct {
	Identity
	Name         string
	Surname      string
	Email        string
	Phone        string
	Password     string
	BirthDate    time.Time
	Image        string
	Greeting     string
	Premium      bool
	RegisteredAt time.Time
	contacts     []Contact
}

// Contacts returns individual contacts and groups in insertion order.
// The slice must not be modified.
func (u *User) Contacts() []Contact {
	return u.contacts
}

func (u *User) AddContact(contact Contact) bool {
	if contact == nil || lo.Contains(u.contacts, contact) {
		return false
	}
	u.contacts = append(u.contacts, contact)
	return true
}

func (u *User) RemoveContact(contact Contact) bool {
	if !lo.Contains(u.contacts, contact) {
		return false
	}
	u.contacts = lo.Without(u.contacts, contact)
	return true
}

func (u *User) IndividualContacts() []*IndividualContact {
	return lo.FilterMap(u.contacts, func(c Contact, _ int) (*IndividualContact, bool) {
		ic, ok := c.(*IndividualContact)
		return ic, ok
	})
}

func (u *User) Groups() []*Group {
	return lo.FilterMap(u.contacts, func(c Contact, _ int) (*Group, bool) {
		g, ok := c.(*Group)
		return g, ok
	})
}
