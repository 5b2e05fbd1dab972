package mapper

import (
	"chat-mapper/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroupAdapter_Single_Member_Scenario(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)

	// Given a user, a contact pointing at it and a group with that sole member
	alice := newUser("alice", "+1")
	req.NoError(r.Users.Register(alice))
	contact := domain.NewIndividualContact("Alice", alice)
	req.NoError(r.Contacts.Register(contact))
	group := domain.NewGroup("friends", contact)
	req.NoError(r.Groups.Register(group))

	// When the group is fetched in a fresh process
	fresh := restart(r)
	rebuilt, err := fresh.Groups.Fetch(group.ID())
	req.NoError(err)

	// Then it holds exactly the contact, which points at the user
	req.Len(rebuilt.Members(), 1)
	member, ok := rebuilt.Members()[0].(*domain.IndividualContact)
	req.True(ok)
	req.Equal(contact.ID(), member.ID())
	req.Equal(alice.ID(), member.User().ID())

	// When the group is deleted
	req.NoError(fresh.Groups.Delete(rebuilt))

	// Then the contact and the user are still there
	again := restart(r)
	_, err = again.Contacts.Fetch(contact.ID())
	req.NoError(err)
	_, err = again.Users.Fetch(alice.ID())
	req.NoError(err)
	req.Zero(countEntities(t, r.Store(), TypeGroup))
}

func TestGroupAdapter_Register_Cascades_Messages_And_Members(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob, carol := newUser("bob", "+2"), newUser("carol", "+3")
	req.NoError(r.Users.Register(bob))
	req.NoError(r.Users.Register(carol))

	// Given transient members and messages
	toBob := domain.NewIndividualContact("Bob", bob)
	toCarol := domain.NewIndividualContact("Carol", carol)
	group := domain.NewGroup("team", toBob, toCarol)
	group.AttachMessage(sent("kickoff at 10", 0))

	// When the group is registered
	req.NoError(r.Groups.Register(group))

	// Then everything got an id
	req.NotZero(group.ID())
	req.NotZero(toBob.ID())
	req.NotZero(toCarol.ID())
	req.NotZero(group.Messages()[0].ID())

	// And the round trip keeps members and messages in order
	rebuilt, err := restart(r).Groups.Fetch(group.ID())
	req.NoError(err)
	req.Equal("team", rebuilt.Name())
	req.Equal([]int64{toBob.ID(), toCarol.ID()}, ids(rebuilt.Members()))
	requireSameMessages(t, group.Messages(), rebuilt.Messages())
}

func TestGroupAdapter_Skips_Unsupported_Members(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob := newUser("bob", "+2")
	req.NoError(r.Users.Register(bob))
	toBob := domain.NewIndividualContact("Bob", bob)
	inner := domain.NewGroup("inner", toBob)

	// Given a group holding another group
	outer := domain.NewGroup("outer", toBob, inner)
	req.Len(outer.Members(), 2)

	// When registered, the nested group is reported and skipped
	req.NoError(r.Groups.Register(outer))
	req.Zero(inner.ID())
	req.Equal(1, countEntities(t, r.Store(), TypeGroup))

	rebuilt, err := restart(r).Groups.Fetch(outer.ID())
	req.NoError(err)
	req.Equal([]int64{toBob.ID()}, ids(rebuilt.Members()))
}

func TestGroupAdapter_Delete_Keeps_Member_Messages(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob := newUser("bob", "+2")
	req.NoError(r.Users.Register(bob))
	toBob := domain.NewIndividualContact("Bob", bob)
	toBob.AddMessage(sent("private", 0))
	group := domain.NewGroup("team", toBob)
	group.AttachMessage(sent("public", 1))
	req.NoError(r.Groups.Register(group))
	req.Equal(2, countEntities(t, r.Store(), TypeMessage))

	// When the group is deleted
	req.NoError(r.Groups.Delete(group))

	// Then only the group message is gone
	req.Equal(1, countEntities(t, r.Store(), TypeMessage))
	rebuilt, err := restart(r).Contacts.Fetch(toBob.ID())
	req.NoError(err)
	requireSameMessages(t, toBob.Messages(), rebuilt.Messages())
}

func TestGroupAdapter_Broadcast_Persisted_By_Update(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob, carol := newUser("bob", "+2"), newUser("carol", "+3")
	req.NoError(r.Users.Register(bob))
	req.NoError(r.Users.Register(carol))
	toBob := domain.NewIndividualContact("Bob", bob)
	toCarol := domain.NewIndividualContact("Carol", carol)
	group := domain.NewGroup("team", toBob, toCarol)
	req.NoError(r.Groups.Register(group))

	// When a message is broadcast and the caller persists the fan-out
	group.AddMessage(sent("lunch?", 0))
	req.NoError(r.Groups.Update(group))
	req.NoError(r.Contacts.Update(toBob))
	req.NoError(r.Contacts.Update(toCarol))

	// Then the group and each member own their own copy
	req.Equal(3, countEntities(t, r.Store(), TypeMessage))
	fresh := restart(r)
	for _, c := range []*domain.IndividualContact{toBob, toCarol} {
		rebuilt, err := fresh.Contacts.Fetch(c.ID())
		req.NoError(err)
		req.Len(rebuilt.Messages(), 1)
		req.Equal("lunch?", rebuilt.Messages()[0].Text())
	}
	rebuiltGroup, err := fresh.Groups.Fetch(group.ID())
	req.NoError(err)
	req.Len(rebuiltGroup.Messages(), 1)
}

func TestGroupAdapter_Update_New_Member(t *testing.T) {
	req := require.New(t)
	r := newTestRegistry(t)
	bob, carol := newUser("bob", "+2"), newUser("carol", "+3")
	req.NoError(r.Users.Register(bob))
	req.NoError(r.Users.Register(carol))
	toBob := domain.NewIndividualContact("Bob", bob)
	group := domain.NewGroup("team", toBob)
	req.NoError(r.Groups.Register(group))

	// When a transient member joins and the group is updated
	toCarol := domain.NewIndividualContact("Carol", carol)
	req.True(group.AddMember(toCarol))
	group.Rename("crew")
	req.NoError(r.Groups.Update(group))

	// Then the member is registered and listed
	req.NotZero(toCarol.ID())
	rebuilt, err := restart(r).Groups.Fetch(group.ID())
	req.NoError(err)
	req.Equal("crew", rebuilt.Name())
	req.Equal([]int64{toBob.ID(), toCarol.ID()}, ids(rebuilt.Members()))
}
