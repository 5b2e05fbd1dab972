package store

import (
	"chat-mapper/errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const (
	entityPrefix  = "entity:"
	typePrefix    = "type:"
	sequenceKey   = "seq:entity"
	sequenceLease = 100
)

// BadgerStore keeps every entity under "entity:{id_padded}" and indexes it
// under "type:{type_name}:{id_padded}" so that a prefix scan returns the
// entities of one type sorted by id.
type BadgerStore struct {
	db       *badger.DB
	sequence *badger.Sequence
	log      *slog.Logger
	ownsDB   bool
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) (*BadgerStore, error) {
	sequence, err := db.GetSequence([]byte(sequenceKey), sequenceLease)
	if err != nil {
		return nil, fmt.Errorf("entity sequence: %w", err)
	}
	return &BadgerStore{db: db, sequence: sequence, log: log}, nil
}

func entityKey(id int64) []byte {
	return []byte(fmt.Sprintf("%s%019d", entityPrefix, id))
}

func typeKey(typeName string, id int64) []byte {
	return []byte(fmt.Sprintf("%s%s:%019d", typePrefix, typeName, id))
}

func (b *BadgerStore) FetchEntity(id int64) (Entity, error) {
	var entity Entity
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		entity, err = b.read(txn, id)
		return err
	})
	return entity, err
}

func (b *BadgerStore) read(txn *badger.Txn, id int64) (Entity, error) {
	item, err := txn.Get(entityKey(id))
	if err == badger.ErrKeyNotFound {
		return Entity{}, fmt.Errorf("%w: %d", errors.ErrEntityNotFound, id)
	}
	if err != nil {
		return Entity{}, err
	}
	var entity Entity
	err = item.Value(func(value []byte) error {
		entity, err = unmarshalEntity(id, value)
		return err
	})
	return entity, err
}

func (b *BadgerStore) FetchEntitiesByType(typeName string) ([]Entity, error) {
	var entities []Entity
	err := b.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("%s%s:", typePrefix, typeName)
		prefix := []byte(prefixStr)
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		var ids []int64
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			raw := strings.TrimPrefix(string(it.Item().Key()), prefixStr)
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("type index key %q: %w", it.Item().Key(), err)
			}
			ids = append(ids, id)
		}

		for _, id := range ids {
			entity, err := b.read(txn, id)
			if err != nil {
				return err
			}
			entities = append(entities, entity)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (b *BadgerStore) CreateEntity(entity Entity) (Entity, error) {
	next, err := b.sequence.Next()
	if err != nil {
		return Entity{}, fmt.Errorf("next entity id: %w", err)
	}
	// Badger sequences start at 0, which is reserved for transient objects.
	created := entity.withID(int64(next) + 1)
	bytes, err := marshalEntity(created)
	if err != nil {
		return Entity{}, err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(entityKey(created.ID), bytes); err != nil {
			return err
		}
		return txn.Set(typeKey(created.TypeName, created.ID), nil)
	})
	if err != nil {
		return Entity{}, err
	}
	b.log.Debug("Entity created", "id", created.ID, "type", created.TypeName)
	return created, nil
}

func (b *BadgerStore) DeleteEntity(entity Entity) error {
	return b.db.Update(func(txn *badger.Txn) error {
		stored, err := b.read(txn, entity.ID)
		if errors.Is(err, errors.ErrEntityNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err = txn.Delete(entityKey(stored.ID)); err != nil {
			return err
		}
		return txn.Delete(typeKey(stored.TypeName, stored.ID))
	})
}

func (b *BadgerStore) UpdateProperty(property Property) error {
	return b.db.Update(func(txn *badger.Txn) error {
		entity, err := b.read(txn, property.EntityID)
		if err != nil {
			return err
		}
		entity.setProperty(property.Name, property.Value)
		bytes, err := marshalEntity(entity)
		if err != nil {
			return err
		}
		return txn.Set(entityKey(entity.ID), bytes)
	})
}

// OpenBadger opens the database at path, or an in-memory one when path is
// empty, and closes it together with the store.
func OpenBadger(path string, log *slog.Logger) (*BadgerStore, error) {
	options := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		options = options.WithInMemory(true)
	}
	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	s, err := NewBadgerStore(db, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.ownsDB = true
	return s, nil
}

// Close releases the leased ids. The database is closed only when the
// store opened it.
func (b *BadgerStore) Close() error {
	if err := b.sequence.Release(); err != nil {
		return err
	}
	if b.ownsDB {
		b.log.Info("Closing BadgerDB...")
		return b.db.Close()
	}
	return nil
}
