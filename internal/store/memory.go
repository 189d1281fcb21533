package store

import (
	"sync"
)

// MemoryStore is an in-memory implementation of [Store].
//
// Elements are indexed by value for membership checks and kept in a slice
// for display, so [MemoryStore.List] yields them in insertion order. Removing
// an element preserves the relative order of the rest.
//
// MemoryStore is safe for concurrent use.
type MemoryStore[T comparable] struct {
	mu        sync.RWMutex
	index     map[T]struct{}
	items     []T
	listeners []func(Change[T])
	lisMu     sync.RWMutex
}

// NewMemoryStore creates an empty [MemoryStore].
//
// The store is immediately ready for use. No cleanup is required when done.
func NewMemoryStore[T comparable]() *MemoryStore[T] {
	return &MemoryStore[T]{
		index: make(map[T]struct{}),
	}
}

// Add inserts item and notifies listeners.
func (m *MemoryStore[T]) Add(item T) error {
	m.mu.Lock()
	if _, exists := m.index[item]; exists {
		m.mu.Unlock()
		return ErrDuplicate
	}
	m.index[item] = struct{}{}
	m.items = append(m.items, item)
	m.mu.Unlock()

	m.notify(Change[T]{Kind: ChangeAdded, Item: item})
	return nil
}

// Remove deletes the first element equal to item and notifies listeners.
func (m *MemoryStore[T]) Remove(item T) error {
	m.mu.Lock()
	if _, exists := m.index[item]; !exists {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.index, item)
	for i, existing := range m.items {
		if existing == item {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	m.notify(Change[T]{Kind: ChangeRemoved, Item: item})
	return nil
}

// Contains reports whether an element equal to item is stored.
func (m *MemoryStore[T]) Contains(item T) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.index[item]
	return exists
}

// List returns a snapshot of all stored elements in insertion order.
func (m *MemoryStore[T]) List() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]T, len(m.items))
	copy(items, m.items)
	return items
}

// Len returns the number of stored elements.
func (m *MemoryStore[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// OnChange registers fn to be called after every successful Add or Remove.
//
// Listeners run synchronously on the mutating goroutine, in registration
// order. Nil listeners are ignored.
func (m *MemoryStore[T]) OnChange(fn func(Change[T])) {
	if fn == nil {
		return
	}

	m.lisMu.Lock()
	m.listeners = append(m.listeners, fn)
	m.lisMu.Unlock()
}

// notify delivers the change to every registered listener.
func (m *MemoryStore[T]) notify(change Change[T]) {
	m.lisMu.RLock()
	listeners := make([]func(Change[T]), len(m.listeners))
	copy(listeners, m.listeners)
	m.lisMu.RUnlock()

	for _, fn := range listeners {
		fn(change)
	}
}
