// Package storage provides the persistence layer: a small key-value
// contract, an in-memory and a SQLite-backed implementation of it, and the
// card and history stores layered on top.
package storage

import "errors"

// ErrNotFound is returned by Read when no value exists for the key.
// Check with errors.Is.
var ErrNotFound = errors.New("key not found")

// KV is the byte-level persistence contract the stores are built on. Keys
// are derived deterministically from item identifiers under a fixed
// namespace prefix; values are serialized records.
//
// Implementations serve a single local actor. Callers do not issue
// concurrent operations against the same KV.
type KV interface {
	// Read returns the value stored under key, or ErrNotFound.
	Read(key string) ([]byte, error)

	// Write stores value under key, overwriting any existing value.
	Write(key string, value []byte) error

	// Scan calls fn for every stored pair in ascending key order and
	// stops at the first error, which it returns.
	Scan(fn func(key string, value []byte) error) error
}
