//go:generate go run go.uber.org/mock/mockgen -source=entity.go -destination=../mocks/mock_entity_store.go -package=mocks
package store

import "github.com/samber/lo"

// EntityStore is the generic attribute store the mapper persists into.
// Every call is synchronous and durable once it returns.
// Only single-entity operations are atomic.
type EntityStore interface {
	// FetchEntity returns errors.ErrEntityNotFound when id is unknown.
	FetchEntity(id int64) (Entity, error)
	// FetchEntitiesByType returns every entity of typeName ordered by id.
	FetchEntitiesByType(typeName string) ([]Entity, error)
	// CreateEntity ignores entity.ID and returns the entity with its assigned id.
	CreateEntity(entity Entity) (Entity, error)
	// DeleteEntity does nothing when the entity does not exist.
	DeleteEntity(entity Entity) error
	// UpdateProperty replaces the value of an existing property or appends it.
	UpdateProperty(property Property) error
	Close() error
}

type Entity struct {
	ID         int64
	TypeName   string
	Properties []Property
}

type Property struct {
	EntityID int64
	Name     string
	Value    string
}

func NewEntity(typeName string) Entity {
	return Entity{TypeName: typeName}
}

// With appends a property and returns the entity for chaining.
func (e Entity) With(name, value string) Entity {
	e.Properties = append(e.Properties, Property{EntityID: e.ID, Name: name, Value: value})
	return e
}

// Value returns the value of the named property, or "" when it is absent.
func (e Entity) Value(name string) string {
	p, _ := e.Property(name)
	return p.Value
}

func (e Entity) Property(name string) (Property, bool) {
	return lo.Find(e.Properties, func(p Property) bool {
		return p.Name == name
	})
}

// setProperty applies UpdateProperty semantics on an in-memory entity.
func (e *Entity) setProperty(name, value string) {
	_, index, ok := lo.FindIndexOf(e.Properties, func(p Property) bool {
		return p.Name == name
	})
	if ok {
		e.Properties[index].Value = value
		return
	}
	e.Properties = append(e.Properties, Property{EntityID: e.ID, Name: name, Value: value})
}

// withID stamps id on the entity and every property.
func (e Entity) withID(id int64) Entity {
	e.ID = id
	e.Properties = lo.Map(e.Properties, func(p Property, _ int) Property {
		p.EntityID = id
		return p
	})
	return e
}
