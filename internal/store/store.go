package store

import "errors"

var (
	// ErrNotFound is returned when a collection has never been written.
	ErrNotFound = errors.New("collection not found")
)

// Store persists named collections of JSON documents. Each collection is a
// single value (typically a slice or a record) serialized as one blob, the
// same way the browser storefront kept whole collections under one key.
// Exactly one backend is active at a time; there is no mirroring between
// backends.
type Store interface {
	// Read unmarshals the collection into v. Returns ErrNotFound when the
	// collection has never been written.
	Read(name string, v any) error
	// Write replaces the collection with the serialized form of v.
	Write(name string, v any) error
	// Delete removes the collection. Deleting an absent collection is not
	// an error.
	Delete(name string) error
}
