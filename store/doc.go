// Package store persists the generated JSON snapshots and views. The
// filesystem backend writes into a directory meant to be served statically;
// the memory backend exists for tests.
package store
