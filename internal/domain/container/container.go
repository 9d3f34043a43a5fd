// Package container provides an id-keyed collection that hands out the
// smallest unused non-negative id.
package container

import (
	"iter"
	"slices"
)

// HasID is implemented by every element stored in a UidContainer.
// SetID must propagate the new id to any child that stores it.
type HasID interface {
	ID() uint32
	SetID(id uint32)
}

// UidContainer keeps elements in insertion order. Ids may be sparse after removals.
// Lookups are linear; sizes are bounded by tournament scale.
type UidContainer[T HasID] struct {
	items []T
}

// New returns an empty container
func New[T HasID]() *UidContainer[T] {
	return &UidContainer[T]{}
}

// NextID returns the id Push would assign
func (c *UidContainer[T]) NextID() uint32 {
	var id uint32
	for c.contains(id) {
		id++
	}
	return id
}

func (c *UidContainer[T]) contains(id uint32) bool {
	return slices.ContainsFunc(c.items, func(item T) bool { return item.ID() == id })
}

// Push assigns the smallest unused id to item and appends it
func (c *UidContainer[T]) Push(item T) uint32 {
	id := c.NextID()
	item.SetID(id)
	c.items = append(c.items, item)
	return id
}

// Insert appends item keeping its current id. Used when rebuilding from a snapshot.
func (c *UidContainer[T]) Insert(item T) {
	c.items = append(c.items, item)
}

// Remove deletes the element with the given id. It reports whether anything was removed.
func (c *UidContainer[T]) Remove(id uint32) bool {
	n := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(item T) bool { return item.ID() == id })
	return len(c.items) != n
}

// Get returns the element with the given id
func (c *UidContainer[T]) Get(id uint32) (T, bool) {
	for _, item := range c.items {
		if item.ID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len returns the number of elements
func (c *UidContainer[T]) Len() int {
	return len(c.items)
}

// All iterates in insertion order
func (c *UidContainer[T]) All() iter.Seq[T] {
	return slices.Values(c.items)
}

// IDs returns the ids in insertion order
func (c *UidContainer[T]) IDs() []uint32 {
	ids := make([]uint32, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.ID())
	}
	return ids
}
