package mapper

import (
	"chat-mapper/domain"
	"chat-mapper/errors"
	"chat-mapper/store"
	"fmt"
	"log/slog"
)

const (
	propText      = "text"
	propEmoticon  = "emoticon"
	propTimestamp = "timestamp"
	propKind      = "kind"
)

// MessageAdapter maps messages to entities. Messages own nothing and are
// never updated once persisted.
type MessageAdapter struct {
	store store.EntityStore
	pool  *Pool
	log   *slog.Logger
}

func NewMessageAdapter(s store.EntityStore, pool *Pool, log *slog.Logger) *MessageAdapter {
	return &MessageAdapter{store: s, pool: pool, log: log}
}

// Register persists msg and assigns its id. An already stored message is left untouched.
func (a *MessageAdapter) Register(msg *domain.Message) error {
	found, err := exists(a.store, msg.ID())
	if err != nil || found {
		return err
	}
	entity, err := a.store.CreateEntity(store.NewEntity(TypeMessage).
		With(propText, msg.Text()).
		With(propEmoticon, formatEmoticon(msg.Emoticon())).
		With(propTimestamp, formatDate(msg.At())).
		With(propKind, string(msg.Kind())))
	if err != nil {
		return fmt.Errorf("register message: %w", err)
	}
	msg.SetID(entity.ID)
	a.pool.Put(entity.ID, msg)
	return nil
}

// RegisterAll registers messages in order.
func (a *MessageAdapter) RegisterAll(messages []*domain.Message) error {
	for _, m := range messages {
		if err := a.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes msg from the store and the pool. A missing entity is ignored.
func (a *MessageAdapter) Delete(msg *domain.Message) error {
	found, err := exists(a.store, msg.ID())
	if err != nil || !found {
		return err
	}
	if err = a.store.DeleteEntity(store.Entity{ID: msg.ID(), TypeName: TypeMessage}); err != nil {
		return fmt.Errorf("delete message %d: %w", msg.ID(), err)
	}
	a.pool.Remove(msg.ID())
	return nil
}

func (a *MessageAdapter) DeleteAll(messages []*domain.Message) error {
	for _, m := range messages {
		if err := a.Delete(m); err != nil {
			return err
		}
	}
	return nil
}

func (a *MessageAdapter) Fetch(id int64) (*domain.Message, error) {
	if msg, ok, err := lookup[*domain.Message](a.pool, id); ok || err != nil {
		return msg, err
	}
	entity, err := a.store.FetchEntity(id)
	if err != nil {
		return nil, err
	}
	return a.materialize(entity)
}

func (a *MessageAdapter) FetchAll() ([]*domain.Message, error) {
	entities, err := a.store.FetchEntitiesByType(TypeMessage)
	if err != nil {
		return nil, err
	}
	messages := make([]*domain.Message, 0, len(entities))
	for _, entity := range entities {
		msg, ok, err := lookup[*domain.Message](a.pool, entity.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			if msg, err = a.materialize(entity); err != nil {
				return nil, err
			}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (a *MessageAdapter) materialize(entity store.Entity) (*domain.Message, error) {
	if err := checkType(entity, TypeMessage); err != nil {
		return nil, err
	}
	emoticon, err := parseEmoticon(entity.Value(propEmoticon))
	if err != nil {
		return nil, err
	}
	at, err := parseDate(propTimestamp, entity.Value(propTimestamp))
	if err != nil {
		return nil, err
	}
	kind := domain.MessageKind(entity.Value(propKind))
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: kind %q", errors.ErrMalformedProperty, kind)
	}
	msg := domain.NewMessage(entity.Value(propText), emoticon, at, kind)
	msg.SetID(entity.ID)
	a.pool.Put(entity.ID, msg)
	return msg, nil
}
