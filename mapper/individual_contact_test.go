package mapper

import (
	"chat-mapper/domain"
	"chat-mapper/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndividualContactAdapter_Register_Cascades_Messages(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob := newUser("bob", "+2")
	req.NoError(r.Users.Register(bob))

	contact := domain.NewIndividualContact("Bobby", bob)
	contact.AddMessage(sent("hi bob", 0))
	contact.AddMessage(received("hi!", domain.Emoticon(1), 1))

	// When the contact is registered
	req.NoError(r.Contacts.Register(contact))

	// Then it and its messages are persisted
	req.NotZero(contact.ID())
	for _, m := range contact.Messages() {
		req.NotZero(m.ID())
	}
	req.Equal(2, countEntities(t, r.Store(), TypeMessage))
	// And the user was not registered a second time
	req.Equal(1, countEntities(t, r.Store(), TypeUser))

	// And the entity carries the message ids in order
	entity, err := r.Store().FetchEntity(contact.ID())
	req.NoError(err)
	req.Equal(encodeIDs(contact.Messages()), entity.Value("messages"))
}

func TestIndividualContactAdapter_Roundtrip(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob := newUser("bob", "+2")
	req.NoError(r.Users.Register(bob))
	contact := domain.NewIndividualContact("Bobby", bob)
	contact.AddMessage(sent("first", 0))
	contact.AddMessage(sent("second", 1))
	contact.AddMessage(received("third", domain.NoEmoticon, 2))
	req.NoError(r.Contacts.Register(contact))

	// When fetched in a fresh process
	fresh := restart(r)
	rebuilt, err := fresh.Contacts.Fetch(contact.ID())
	req.NoError(err)

	// Then name, user and messages match
	req.Equal("Bobby", rebuilt.Name())
	req.NotNil(rebuilt.User())
	req.Equal(bob.ID(), rebuilt.User().ID())
	req.Equal(bob.Phone, rebuilt.User().Phone)
	requireSameMessages(t, contact.Messages(), rebuilt.Messages())

	// And the user is the pooled instance
	pooledUser, err := fresh.Users.Fetch(bob.ID())
	req.NoError(err)
	req.Same(pooledUser, rebuilt.User())
}

func TestIndividualContactAdapter_Delete_Keeps_User(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob := newUser("bob", "+2")
	req.NoError(r.Users.Register(bob))
	contact := domain.NewIndividualContact("Bobby", bob)
	contact.AddMessage(sent("bye", 0))
	req.NoError(r.Contacts.Register(contact))
	contactID := contact.ID()

	// When the contact is deleted
	req.NoError(r.Contacts.Delete(contact))

	// Then its messages are gone but the user remains
	req.Zero(countEntities(t, r.Store(), TypeMessage))
	req.Zero(countEntities(t, r.Store(), TypeIndividualContact))
	req.False(r.Pool.Contains(contactID))
	_, err := restart(r).Users.Fetch(bob.ID())
	req.NoError(err)
}

func TestIndividualContactAdapter_Update(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob, carol := newUser("bob", "+2"), newUser("carol", "+3")
	req.NoError(r.Users.Register(bob))
	req.NoError(r.Users.Register(carol))
	contact := domain.NewIndividualContact("Bobby", bob)
	contact.AddMessage(sent("first", 0))
	req.NoError(r.Contacts.Register(contact))

	// When the contact is renamed, pointed at another user and gets a new message
	contact.Rename("Caro")
	contact.SetUser(carol)
	contact.AddMessage(sent("second", 1))
	req.NoError(r.Contacts.Update(contact))

	// Then the new message is persisted and every property rewritten
	req.NotZero(contact.Messages()[1].ID())
	rebuilt, err := restart(r).Contacts.Fetch(contact.ID())
	req.NoError(err)
	req.Equal("Caro", rebuilt.Name())
	req.Equal(carol.ID(), rebuilt.User().ID())
	requireSameMessages(t, contact.Messages(), rebuilt.Messages())
}

func TestIndividualContactAdapter_Update_Transient_Contact(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	contact := domain.NewIndividualContact("nobody", nil)

	err := r.Contacts.Update(contact)
	req.ErrorIs(err, errors.ErrNotPersisted)
}

func TestIndividualContactAdapter_FetchAll(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob := newUser("bob", "+2")
	req.NoError(r.Users.Register(bob))
	first := domain.NewIndividualContact("one", bob)
	second := domain.NewIndividualContact("two", bob)
	req.NoError(r.Contacts.Register(first))
	req.NoError(r.Contacts.Register(second))

	all, err := restart(r).Contacts.FetchAll()
	req.NoError(err)
	req.Equal([]int64{first.ID(), second.ID()}, ids(all))
	// Both contacts share the single pooled user
	req.Same(all[0].User(), all[1].User())
}
