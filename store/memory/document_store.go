// Package memory provides an in-memory implementation of the document store
// used by tests and ephemeral environments.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/triplogue/triplogue-backend/store"
)

// Compile-time contract assertion.
var _ store.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mutex-guarded map of key to document bytes.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewDocumentStore returns an empty in-memory store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		docs: make(map[string][]byte),
	}
}

func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	// Copy so callers cannot mutate stored state.
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (s *DocumentStore) Set(ctx context.Context, key string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(doc))
	copy(stored, doc)
	s.docs[key] = stored
	return nil
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.docs, key)
	return nil
}

func (s *DocumentStore) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for k := range s.docs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Len reports the number of stored documents. Test helper.
func (s *DocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
