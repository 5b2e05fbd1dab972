package mapper

import (
	"chat-mapper/errors"
	"chat-mapper/store"
	"fmt"
	"log/slog"
)

// Registry binds one Pool and the four adapters over a single store.
// Each Registry is an isolated persistence context; build a new one to
// start from an empty identity map.
type Registry struct {
	Pool     *Pool
	Messages *MessageAdapter
	Contacts *IndividualContactAdapter
	Groups   *GroupAdapter
	Users    *UserAdapter
	store    store.EntityStore
}

func NewRegistry(s store.EntityStore, log *slog.Logger) *Registry {
	pool := NewPool()
	messages := NewMessageAdapter(s, pool, log)
	contacts := &IndividualContactAdapter{store: s, pool: pool, messages: messages, log: log}
	groups := &GroupAdapter{store: s, pool: pool, messages: messages, contacts: contacts, log: log}
	users := &UserAdapter{store: s, pool: pool, contacts: contacts, groups: groups, log: log}
	contacts.users = users
	return &Registry{
		Pool:     pool,
		Messages: messages,
		Contacts: contacts,
		Groups:   groups,
		Users:    users,
		store:    s,
	}
}

// Open starts the configured store backend. Any failure is wrapped in
// errors.ErrStoreUnavailable and is meant to abort startup.
func Open(options store.Options, log *slog.Logger) (*Registry, error) {
	s, err := store.Open(options, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrStoreUnavailable, options.Driver, err)
	}
	log.Info("Entity store opened", "driver", options.Driver, "path", options.Path)
	return NewRegistry(s, log), nil
}

func (r *Registry) Store() store.EntityStore {
	return r.store
}

func (r *Registry) Close() error {
	return r.store.Close()
}
