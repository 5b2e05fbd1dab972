package mapper

import (
	"chat-mapper/domain"
	"chat-mapper/store"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/samber/lo"
)

const (
	propSurname      = "surname"
	propEmail        = "email"
	propPhone        = "phone"
	propPassword     = "password"
	propBirthDate    = "birthDate"
	propImage        = "image"
	propGreeting     = "greeting"
	propPremium      = "premium"
	propRegisteredAt = "registeredAt"
	propContacts     = "contacts"
	propGroups       = "groups"
)

// UserAdapter maps the aggregate root: account fields plus the individual
// contacts and groups the user owns.
type UserAdapter struct {
	store    store.EntityStore
	pool     *Pool
	contacts *IndividualContactAdapter
	groups   *GroupAdapter
	log      *slog.Logger
}

// Register writes the user with empty id lists first, so that its id is
// known to contacts that point back at it. Individual contacts are then
// registered before the groups that may reference them, and the id lists
// are written last.
func (a *UserAdapter) Register(user *domain.User) error {
	found, err := exists(a.store, user.ID())
	if err != nil || found {
		return err
	}
	entity, err := a.store.CreateEntity(a.toEntity(user, false))
	if err != nil {
		return fmt.Errorf("register user %q: %w", user.Phone, err)
	}
	user.SetID(entity.ID)
	a.pool.Put(entity.ID, user)

	contacts := lo.Reject(user.IndividualContacts(), func(c *domain.IndividualContact, _ int) bool { return c.Persisted() })
	groups := lo.Reject(user.Groups(), func(g *domain.Group, _ int) bool { return g.Persisted() })
	if err = a.registerContacts(user); err != nil {
		return a.rollback(user, contacts, groups, err)
	}
	if err = a.writeContactLists(user); err != nil {
		return a.rollback(user, contacts, groups, err)
	}
	a.log.Debug("User registered", "id", user.ID(), "phone", user.Phone,
		"contacts", len(user.IndividualContacts()), "groups", len(user.Groups()))
	return nil
}

func (a *UserAdapter) registerContacts(user *domain.User) error {
	for _, contact := range user.IndividualContacts() {
		if err := a.contacts.Register(contact); err != nil {
			return fmt.Errorf("register user %d contact: %w", user.ID(), err)
		}
	}
	for _, group := range user.Groups() {
		if err := a.groups.Register(group); err != nil {
			return fmt.Errorf("register user %d group: %w", user.ID(), err)
		}
	}
	return nil
}

// rollback undoes a partial Register: the contacts and groups it persisted
// are deleted again, then the user entity, so that a retry starts over.
func (a *UserAdapter) rollback(user *domain.User, contacts []*domain.IndividualContact, groups []*domain.Group, cause error) error {
	for _, group := range groups {
		if err := a.groups.Delete(group); err != nil {
			a.log.Error("Rollback failed", "user", user.ID(), "group", group.ID(), "error", err)
		}
		group.SetID(0)
	}
	for _, contact := range contacts {
		if err := a.contacts.Delete(contact); err != nil {
			a.log.Error("Rollback failed", "user", user.ID(), "contact", contact.ID(), "error", err)
		}
		contact.SetID(0)
	}
	if err := a.store.DeleteEntity(store.Entity{ID: user.ID(), TypeName: TypeUser}); err != nil {
		a.log.Error("Rollback failed", "user", user.ID(), "error", err)
	}
	a.pool.Remove(user.ID())
	user.SetID(0)
	return cause
}

func (a *UserAdapter) writeContactLists(user *domain.User) error {
	for _, p := range []store.Property{
		{EntityID: user.ID(), Name: propContacts, Value: encodeIDs(user.IndividualContacts())},
		{EntityID: user.ID(), Name: propGroups, Value: encodeIDs(user.Groups())},
	} {
		if err := a.store.UpdateProperty(p); err != nil {
			return fmt.Errorf("update user %d %s: %w", user.ID(), p.Name, err)
		}
	}
	return nil
}

// Delete cascades to the user's groups, then its individual contacts, which
// in turn drop their messages.
func (a *UserAdapter) Delete(user *domain.User) error {
	found, err := exists(a.store, user.ID())
	if err != nil || !found {
		return err
	}
	for _, group := range user.Groups() {
		if err = a.groups.Delete(group); err != nil {
			return fmt.Errorf("delete user %d group: %w", user.ID(), err)
		}
	}
	for _, contact := range user.IndividualContacts() {
		if err = a.contacts.Delete(contact); err != nil {
			return fmt.Errorf("delete user %d contact: %w", user.ID(), err)
		}
	}
	if err = a.store.DeleteEntity(store.Entity{ID: user.ID(), TypeName: TypeUser}); err != nil {
		return fmt.Errorf("delete user %d: %w", user.ID(), err)
	}
	a.pool.Remove(user.ID())
	a.log.Debug("User deleted", "id", user.ID())
	return nil
}

// Update rewrites every scalar and id-list property. Contacts and groups
// added since the last write are registered first.
func (a *UserAdapter) Update(user *domain.User) error {
	if err := requirePersisted(a.store, user.ID()); err != nil {
		return err
	}
	if err := a.registerContacts(user); err != nil {
		return err
	}
	entity := a.toEntity(user, true)
	entity.ID = user.ID()
	return updateProperties(a.store, entity)
}

func (a *UserAdapter) Fetch(id int64) (*domain.User, error) {
	if user, ok, err := lookup[*domain.User](a.pool, id); ok || err != nil {
		return user, err
	}
	entity, err := a.store.FetchEntity(id)
	if err != nil {
		return nil, err
	}
	return a.materialize(entity)
}

func (a *UserAdapter) FetchAll() ([]*domain.User, error) {
	entities, err := a.store.FetchEntitiesByType(TypeUser)
	if err != nil {
		return nil, err
	}
	users := make([]*domain.User, 0, len(entities))
	for _, entity := range entities {
		user, ok, err := lookup[*domain.User](a.pool, entity.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			if user, err = a.materialize(entity); err != nil {
				return nil, err
			}
		}
		users = append(users, user)
	}
	return users, nil
}

// materialize pools the user before resolving its contacts, which breaks
// the user -> contact -> user cycle.
func (a *UserAdapter) materialize(entity store.Entity) (*domain.User, error) {
	if err := checkType(entity, TypeUser); err != nil {
		return nil, err
	}
	user, err := a.scalars(entity)
	if err != nil {
		return nil, err
	}
	user.SetID(entity.ID)
	a.pool.Put(entity.ID, user)
	owner := fmt.Sprintf("user %d", entity.ID)

	contacts, err := fetchLiveIDs(a.store, a.log, owner, entity.Value(propContacts), a.contacts.Fetch)
	if err != nil {
		a.pool.Remove(entity.ID)
		return nil, fmt.Errorf("user %d contacts: %w", entity.ID, err)
	}
	for _, c := range contacts {
		user.AddContact(c)
	}
	groups, err := fetchLiveIDs(a.store, a.log, owner, entity.Value(propGroups), a.groups.Fetch)
	if err != nil {
		a.pool.Remove(entity.ID)
		return nil, fmt.Errorf("user %d groups: %w", entity.ID, err)
	}
	for _, g := range groups {
		user.AddContact(g)
	}
	return user, nil
}

func (a *UserAdapter) scalars(entity store.Entity) (*domain.User, error) {
	birthDate, err := parseDate(propBirthDate, entity.Value(propBirthDate))
	if err != nil {
		return nil, err
	}
	registeredAt, err := parseDate(propRegisteredAt, entity.Value(propRegisteredAt))
	if err != nil {
		return nil, err
	}
	premium, err := parseBool(propPremium, entity.Value(propPremium))
	if err != nil {
		return nil, err
	}
	return &domain.User{
		Name:         entity.Value(propName),
		Surname:      entity.Value(propSurname),
		Email:        entity.Value(propEmail),
		Phone:        entity.Value(propPhone),
		Password:     entity.Value(propPassword),
		BirthDate:    birthDate,
		Image:        entity.Value(propImage),
		Greeting:     entity.Value(propGreeting),
		Premium:      premium,
		RegisteredAt: registeredAt,
	}, nil
}

// toEntity writes the id lists only when withContacts is set; Register
// fills them once the contacts have ids.
func (a *UserAdapter) toEntity(user *domain.User, withContacts bool) store.Entity {
	contacts, groups := "", ""
	if withContacts {
		contacts, groups = encodeIDs(user.IndividualContacts()), encodeIDs(user.Groups())
	}
	return store.NewEntity(TypeUser).
		With(propName, user.Name).
		With(propSurname, user.Surname).
		With(propEmail, user.Email).
		With(propPhone, user.Phone).
		With(propPassword, user.Password).
		With(propBirthDate, formatDate(user.BirthDate)).
		With(propImage, user.Image).
		With(propGreeting, user.Greeting).
		With(propPremium, strconv.FormatBool(user.Premium)).
		With(propRegisteredAt, formatDate(user.RegisteredAt)).
		With(propContacts, contacts).
		With(propGroups, groups)
}
