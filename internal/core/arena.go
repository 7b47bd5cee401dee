package core

import "iter"

// ID is an opaque handle into an Arena. The generation guards against
// stale handles: once a slot is reused, old IDs stop resolving.
type ID struct {
	index uint32
	gen   uint32
}

// Valid reports whether the id was ever issued. The zero ID never is.
func (id ID) Valid() bool {
	return id.gen != 0
}

type slot[T any] struct {
	gen   uint32
	alive bool
	value T
}

// Arena stores value-typed records in a slice and hands out
// generation-checked IDs. Freed slots are recycled.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena creates an arena with room for capacity records.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Insert stores v and returns its ID.
func (a *Arena[T]) Insert(v T) ID {
	a.live++
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.gen++
		s.alive = true
		s.value = v
		return ID{index: idx, gen: s.gen}
	}
	a.slots = append(a.slots, slot[T]{gen: 1, alive: true, value: v})
	return ID{index: uint32(len(a.slots) - 1), gen: 1}
}

// Get returns a copy of the record for id.
func (a *Arena[T]) Get(id ID) (T, bool) {
	if p := a.Ptr(id); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the record for id, or nil if id is stale.
// The pointer is invalidated by the next Insert.
func (a *Arena[T]) Ptr(id ID) *T {
	if !id.Valid() || int(id.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[id.index]
	if !s.alive || s.gen != id.gen {
		return nil
	}
	return &s.value
}

// Remove frees the slot for id. Removing a stale id is a no-op.
func (a *Arena[T]) Remove(id ID) bool {
	if a.Ptr(id) == nil {
		return false
	}
	s := &a.slots[id.index]
	s.alive = false
	var zero T
	s.value = zero
	a.free = append(a.free, id.index)
	a.live--
	return true
}

// Len returns the number of live records.
func (a *Arena[T]) Len() int {
	return a.live
}

// All iterates live records in slot order.
func (a *Arena[T]) All() iter.Seq2[ID, *T] {
	return func(yield func(ID, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if !s.alive {
				continue
			}
			if !yield(ID{index: uint32(i), gen: s.gen}, &s.value) {
				return
			}
		}
	}
}

// RemoveIf frees every record for which drop returns true and returns
// how many were removed.
func (a *Arena[T]) RemoveIf(drop func(*T) bool) int {
	var ids []ID
	for id, v := range a.All() {
		if drop(v) {
			ids = append(ids, id)
		}
	}
	for _, id := range ids {
		a.Remove(id)
	}
	return len(ids)
}

// Clear drops every record. Generations survive so old IDs stay stale.
// Slots are refilled from index zero up, so a cleared arena iterates in
// insertion order like a fresh one.
func (a *Arena[T]) Clear() {
	a.free = a.free[:0]
	var zero T
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.slots[i].alive = false
		a.slots[i].value = zero
		a.free = append(a.free, uint32(i))
	}
	a.live = 0
}
