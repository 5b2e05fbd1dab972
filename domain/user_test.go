package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_Contacts_Partition(t *testing.T) {
	req := require.New(t)
	alice := &User{Name: "alice", Phone: "+1"}
	bob := NewIndividualContact("Bob", &User{Name: "bob"})
	carol := NewIndividualContact("Carol", &User{Name: "carol"})
	team := NewGroup("team", bob, carol)

	// Given a mixed contact list
	req.True(alice.AddContact(team))
	req.True(alice.AddContact(bob))
	req.True(alice.AddContact(carol))
	req.False(alice.AddContact(bob))

	// Then each kind is listed in insertion order
	req.Equal([]*IndividualContact{bob, carol}, alice.IndividualContacts())
	req.Equal([]*Group{team}, alice.Groups())
	req.Len(alice.Contacts(), 3)

	// When a contact is removed
	req.True(alice.RemoveContact(bob))
	req.False(alice.RemoveContact(bob))
	req.Equal([]*IndividualContact{carol}, alice.IndividualContacts())
}

func TestContactKind(t *testing.T) {
	req := require.New(t)
	req.Equal(KindIndividual, NewIndividualContact("Bob", nil).Kind())
	req.Equal(KindGroup, NewGroup("team").Kind())
	req.Equal("group", KindGroup.String())
	req.Equal("unknown", ContactKind(0).String())
	req.False(MessageKind("READ").Valid())
}
