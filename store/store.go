package store

import "errors"

// ErrNotFound is returned when a key has no stored document.
var ErrNotFound = errors.New("store: not found")

// Store persists small JSON documents under slash-separated keys. Each run
// rewrites its outputs wholesale; nothing is appended or merged, so the last
// writer for a key wins.
type Store interface {
	// ReadJSON unmarshals the document at key into v. Returns ErrNotFound
	// (possibly wrapped) when the key does not exist.
	ReadJSON(key string, v any) error
	// WriteJSON marshals v and replaces the document at key.
	WriteJSON(key string, v any) error
}
