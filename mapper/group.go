package mapper

import (
	"chat-mapper/domain"
	"chat-mapper/store"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

const propMembers = "members"

// GroupAdapter maps groups. Members are registered with the group but
// never deleted with it.
type GroupAdapter struct {
	store    store.EntityStore
	pool     *Pool
	messages *MessageAdapter
	contacts *IndividualContactAdapter
	log      *slog.Logger
}

// Register persists the group's messages and members, then the group.
// Members of an unsupported kind are reported and left out.
func (a *GroupAdapter) Register(group *domain.Group) error {
	found, err := exists(a.store, group.ID())
	if err != nil || found {
		return err
	}
	if err = a.messages.RegisterAll(group.Messages()); err != nil {
		return fmt.Errorf("register group %q messages: %w", group.Name(), err)
	}
	if err = a.registerMembers(group); err != nil {
		return err
	}
	entity, err := a.store.CreateEntity(a.toEntity(group))
	if err != nil {
		return fmt.Errorf("register group %q: %w", group.Name(), err)
	}
	group.SetID(entity.ID)
	a.pool.Put(entity.ID, group)
	a.log.Debug("Group registered", "id", entity.ID, "members", len(group.Members()))
	return nil
}

func (a *GroupAdapter) registerMembers(group *domain.Group) error {
	for _, member := range group.Members() {
		switch member.Kind() {
		case domain.KindIndividual:
			if err := a.contacts.Register(member.(*domain.IndividualContact)); err != nil {
				return fmt.Errorf("register group %q member: %w", group.Name(), err)
			}
		default:
			a.log.Warn("unsupported member type",
				"group", group.Name(), "member", member.Name(), "kind", member.Kind().String())
		}
	}
	return nil
}

// Delete removes the group and its messages. Members keep their own data.
func (a *GroupAdapter) Delete(group *domain.Group) error {
	found, err := exists(a.store, group.ID())
	if err != nil || !found {
		return err
	}
	if err = a.messages.DeleteAll(group.Messages()); err != nil {
		return fmt.Errorf("delete group %d messages: %w", group.ID(), err)
	}
	if err = a.store.DeleteEntity(store.Entity{ID: group.ID(), TypeName: TypeGroup}); err != nil {
		return fmt.Errorf("delete group %d: %w", group.ID(), err)
	}
	a.pool.Remove(group.ID())
	a.log.Debug("Group deleted", "id", group.ID())
	return nil
}

// Update rewrites every property, registering new messages and members first.
func (a *GroupAdapter) Update(group *domain.Group) error {
	if err := requirePersisted(a.store, group.ID()); err != nil {
		return err
	}
	if err := a.messages.RegisterAll(group.Messages()); err != nil {
		return fmt.Errorf("update group %d messages: %w", group.ID(), err)
	}
	if err := a.registerMembers(group); err != nil {
		return err
	}
	entity := a.toEntity(group)
	entity.ID = group.ID()
	return updateProperties(a.store, entity)
}

func (a *GroupAdapter) Fetch(id int64) (*domain.Group, error) {
	if group, ok, err := lookup[*domain.Group](a.pool, id); ok || err != nil {
		return group, err
	}
	entity, err := a.store.FetchEntity(id)
	if err != nil {
		return nil, err
	}
	return a.materialize(entity)
}

func (a *GroupAdapter) FetchAll() ([]*domain.Group, error) {
	entities, err := a.store.FetchEntitiesByType(TypeGroup)
	if err != nil {
		return nil, err
	}
	groups := make([]*domain.Group, 0, len(entities))
	for _, entity := range entities {
		group, ok, err := lookup[*domain.Group](a.pool, entity.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			if group, err = a.materialize(entity); err != nil {
				return nil, err
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// materialize pools an empty group before resolving members and messages.
func (a *GroupAdapter) materialize(entity store.Entity) (*domain.Group, error) {
	if err := checkType(entity, TypeGroup); err != nil {
		return nil, err
	}
	group := domain.NewGroup(entity.Value(propName))
	group.SetID(entity.ID)
	a.pool.Put(entity.ID, group)

	members, err := fetchLiveIDs(a.store, a.log, fmt.Sprintf("group %d", entity.ID),
		entity.Value(propMembers), a.contacts.Fetch)
	if err != nil {
		a.pool.Remove(entity.ID)
		return nil, fmt.Errorf("group %d members: %w", entity.ID, err)
	}
	for _, m := range members {
		group.AddMember(m)
	}

	messages, err := fetchIDs(entity.Value(propMessages), a.messages.Fetch)
	if err != nil {
		a.pool.Remove(entity.ID)
		return nil, fmt.Errorf("group %d messages: %w", entity.ID, err)
	}
	for _, m := range messages {
		group.AttachMessage(m)
	}
	return group, nil
}

// toEntity encodes supported, registered members only.
func (a *GroupAdapter) toEntity(group *domain.Group) store.Entity {
	members := lo.Filter(group.Members(), func(c domain.Contact, _ int) bool {
		return c.Kind() == domain.KindIndividual && c.Persisted()
	})
	return store.NewEntity(TypeGroup).
		With(propName, group.Name()).
		With(propMessages, encodeIDs(group.Messages())).
		With(propMembers, encodeIDs(members))
}
