package store

import (
	"sync"

	"github.com/petar-djukic/satchel/pkg/types"
)

// collection is the in-memory state of one entity kind. Items keep
// insertion order; lookups go through an id index. All methods are safe
// for concurrent use.
type collection[T types.Entity] struct {
	mu    sync.RWMutex
	items []T
}

func newCollection[T types.Entity]() *collection[T] {
	return &collection[T]{}
}

// list returns a copy of the items in insertion order.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// get returns the item with the given id.
func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// has reports whether an item with the given id exists.
func (c *collection[T]) has(id string) bool {
	_, ok := c.get(id)
	return ok
}

// insert appends the item. Returns false without mutating if an item
// with the same id already exists.
func (c *collection[T]) insert(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.EntityID() == item.EntityID() {
			return false
		}
	}
	c.items = append(c.items, item)
	return true
}

// replace swaps the item with the same id. Returns false if absent.
func (c *collection[T]) replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == item.EntityID() {
			c.items[i] = item
			return true
		}
	}
	return false
}

// remove deletes the item with the given id, returning it.
func (c *collection[T]) remove(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return it, true
		}
	}
	var zero T
	return zero, false
}

// setAll replaces the whole collection.
func (c *collection[T]) setAll(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// size returns the item count.
func (c *collection[T]) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
