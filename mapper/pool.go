package mapper

import (
	"chat-mapper/errors"
	"fmt"
)

// Pool is the identity map: at most one live object per persisted id.
// It holds plain references and is not safe for concurrent use.
type Pool struct {
	objects map[int64]any
}

func NewPool() *Pool {
	return &Pool{objects: make(map[int64]any)}
}

func (p *Pool) Contains(id int64) bool {
	_, ok := p.objects[id]
	return ok
}

func (p *Pool) Get(id int64) (any, error) {
	object, ok := p.objects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", errors.ErrNotInPool, id)
	}
	return object, nil
}

// Put overwrites any object already stored under id.
func (p *Pool) Put(id int64, object any) {
	p.objects[id] = object
}

func (p *Pool) Remove(id int64) {
	delete(p.objects, id)
}

func (p *Pool) Len() int {
	return len(p.objects)
}

// lookup returns the pooled object of type T for id. The boolean is false
// on a miss; an object of another type is an error since ids are global.
func lookup[T any](p *Pool, id int64) (T, bool, error) {
	var zero T
	object, ok := p.objects[id]
	if !ok {
		return zero, false, nil
	}
	typed, ok := object.(T)
	if !ok {
		return zero, false, fmt.Errorf("%w: id %d holds %T", errors.ErrUnexpectedType, id, object)
	}
	return typed, true, nil
}
