// Package domain contains core concepts of the chat system.
// This file defines the store-assigned identity shared by every aggregate.
package domain

// Identity carries the id assigned by the entity store.
// Zero means the object has never been registered.
type Identity struct {
	id int64
}

func (i *Identity) ID() int64 {
	return i.id
}

func (i *Identity) SetID(id int64) {
	i.id = id
}

// Persisted reports whether the store has already assigned an id.
func (i *Identity) Persisted() bool {
	return i.id != 0
}
