package mapper

import (
	"chat-mapper/domain"
	"chat-mapper/store"
	"fmt"
	"log/slog"
	"strconv"
)

const (
	propName     = "name"
	propUser     = "user"
	propMessages = "messages"
)

// IndividualContactAdapter maps one-to-one contacts. The referenced user is
// resolved on fetch but never registered or deleted from here.
type IndividualContactAdapter struct {
	store    store.EntityStore
	pool     *Pool
	messages *MessageAdapter
	users    *UserAdapter
	log      *slog.Logger
}

// Register persists the contact's messages, then the contact itself.
// The referenced user must already be registered by the caller.
func (a *IndividualContactAdapter) Register(contact *domain.IndividualContact) error {
	found, err := exists(a.store, contact.ID())
	if err != nil || found {
		return err
	}
	if err = a.messages.RegisterAll(contact.Messages()); err != nil {
		return fmt.Errorf("register contact %q messages: %w", contact.Name(), err)
	}
	entity, err := a.store.CreateEntity(a.toEntity(contact))
	if err != nil {
		return fmt.Errorf("register contact %q: %w", contact.Name(), err)
	}
	contact.SetID(entity.ID)
	a.pool.Put(entity.ID, contact)
	a.log.Debug("Contact registered", "id", entity.ID, "user", userID(contact))
	return nil
}

// Delete removes the contact and its messages. The referenced user is kept.
func (a *IndividualContactAdapter) Delete(contact *domain.IndividualContact) error {
	found, err := exists(a.store, contact.ID())
	if err != nil || !found {
		return err
	}
	if err = a.messages.DeleteAll(contact.Messages()); err != nil {
		return fmt.Errorf("delete contact %d messages: %w", contact.ID(), err)
	}
	if err = a.store.DeleteEntity(store.Entity{ID: contact.ID(), TypeName: TypeIndividualContact}); err != nil {
		return fmt.Errorf("delete contact %d: %w", contact.ID(), err)
	}
	a.pool.Remove(contact.ID())
	a.log.Debug("Contact deleted", "id", contact.ID())
	return nil
}

// Update rewrites every property. Messages appended since the last write
// are registered first so that the id list never holds a transient message.
func (a *IndividualContactAdapter) Update(contact *domain.IndividualContact) error {
	if err := requirePersisted(a.store, contact.ID()); err != nil {
		return err
	}
	if err := a.messages.RegisterAll(contact.Messages()); err != nil {
		return fmt.Errorf("update contact %d messages: %w", contact.ID(), err)
	}
	entity := a.toEntity(contact)
	entity.ID = contact.ID()
	return updateProperties(a.store, entity)
}

func (a *IndividualContactAdapter) Fetch(id int64) (*domain.IndividualContact, error) {
	if contact, ok, err := lookup[*domain.IndividualContact](a.pool, id); ok || err != nil {
		return contact, err
	}
	entity, err := a.store.FetchEntity(id)
	if err != nil {
		return nil, err
	}
	return a.materialize(entity)
}

func (a *IndividualContactAdapter) FetchAll() ([]*domain.IndividualContact, error) {
	entities, err := a.store.FetchEntitiesByType(TypeIndividualContact)
	if err != nil {
		return nil, err
	}
	contacts := make([]*domain.IndividualContact, 0, len(entities))
	for _, entity := range entities {
		contact, ok, err := lookup[*domain.IndividualContact](a.pool, entity.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			if contact, err = a.materialize(entity); err != nil {
				return nil, err
			}
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

// materialize builds the contact without its user and pools it before
// resolving the user, whose own contact list may point back here.
func (a *IndividualContactAdapter) materialize(entity store.Entity) (*domain.IndividualContact, error) {
	if err := checkType(entity, TypeIndividualContact); err != nil {
		return nil, err
	}
	contact := domain.NewIndividualContact(entity.Value(propName), nil)
	contact.SetID(entity.ID)
	a.pool.Put(entity.ID, contact)

	uid, err := parseID(propUser, entity.Value(propUser))
	if err != nil {
		return nil, a.discard(entity.ID, err)
	}
	if uid != 0 {
		user, err := a.users.Fetch(uid)
		switch {
		case err == nil:
			contact.SetUser(user)
		case dangling(a.store, uid, err):
			a.log.Warn("contact user no longer exists", "contact", entity.ID, "user", uid)
		default:
			return nil, a.discard(entity.ID, fmt.Errorf("contact %d user: %w", entity.ID, err))
		}
	}

	messages, err := fetchIDs(entity.Value(propMessages), a.messages.Fetch)
	if err != nil {
		return nil, a.discard(entity.ID, fmt.Errorf("contact %d messages: %w", entity.ID, err))
	}
	for _, m := range messages {
		contact.AddMessage(m)
	}
	return contact, nil
}

// discard evicts a half-built object so that a later fetch retries from the store.
func (a *IndividualContactAdapter) discard(id int64, err error) error {
	a.pool.Remove(id)
	return err
}

func (a *IndividualContactAdapter) toEntity(contact *domain.IndividualContact) store.Entity {
	return store.NewEntity(TypeIndividualContact).
		With(propName, contact.Name()).
		With(propUser, strconv.FormatInt(userID(contact), 10)).
		With(propMessages, encodeIDs(contact.Messages()))
}

func userID(contact *domain.IndividualContact) int64 {
	if contact.User() == nil {
		return 0
	}
	return contact.User().ID()
}
