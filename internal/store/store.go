package store

import "errors"

var (
	// ErrDuplicate is returned by Add when an equal element is already stored.
	ErrDuplicate = errors.New("record already present")

	// ErrNotFound is returned by Remove when no equal element is stored.
	ErrNotFound = errors.New("record not found")
)

// ChangeKind identifies the mutation reported by a [Change].
type ChangeKind string

const (
	// ChangeAdded is reported after an element was inserted.
	ChangeAdded ChangeKind = "added"

	// ChangeRemoved is reported after an element was deleted.
	ChangeRemoved ChangeKind = "removed"
)

// Change describes a successful mutation of a [Store].
type Change[T comparable] struct {
	Kind ChangeKind
	Item T
}

// Store defines the operations on a duplicate-free collection.
//
// Membership is decided by Go equality on T. Implementations must present
// every element exactly once from List.
type Store[T comparable] interface {
	// Add inserts item. Returns ErrDuplicate (and leaves the store unchanged)
	// if an equal element is already present.
	Add(item T) error

	// Remove deletes the element equal to item.
	// Returns ErrNotFound if there is none.
	Remove(item T) error

	// Contains reports whether an element equal to item is stored.
	Contains(item T) bool

	// List returns a snapshot of all elements.
	// The returned slice is a copy; modifications do not affect the store.
	List() []T

	// Len returns the number of stored elements.
	Len() int
}
