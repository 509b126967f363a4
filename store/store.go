// Package store defines the prefix-keyed document store abstraction that all
// entity repositories persist through. Documents are opaque JSON values
// addressed by structured string keys (see keys.go for the namespace).
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get for a missing key. It is the only sentinel
// callers need to distinguish; every other error is a transport failure.
var ErrNotFound = errors.New("document not found")

// DocumentStore is a flat mapping from string key to a JSON document.
//
// List returns exactly the set of keys whose string value begins with the
// given prefix. Ordering is unspecified; repositories apply their own sort
// after fetching. Set overwrites unconditionally (last write wins) and
// Delete tolerates missing keys as a no-op.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, doc []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
}
