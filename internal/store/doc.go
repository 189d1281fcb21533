// Package store provides the in-memory record collection behind a roster session.
//
// This package is internal to roster and holds the duplicate-free set of
// records a session works on. Elements are compared by Go equality, so two
// values with identical fields are the same element.
//
// The main components are:
//
//   - [Store]: Interface defining the collection operations
//   - [MemoryStore]: Map-indexed implementation that keeps insertion order
//   - [Change]: Notification sent to listeners after a successful mutation
//
// Listeners registered with [MemoryStore.OnChange] are called synchronously,
// after the store lock has been released.
//
// Users of the roster library should not need to interact with this package
// directly. Storage is managed internally by roster.Session.
package store
