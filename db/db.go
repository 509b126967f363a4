// Package db contains the entity repositories. Each repository owns one
// slice of the key namespace and the creation defaults, parsing, and sort
// order for its entity type, persisting through the document store.
package db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/store"
)

// listDocs fetches every document under a prefix and decodes it into T.
// Malformed documents are skipped with a warning so one bad record cannot
// take down a whole listing; keys deleted between List and Get are skipped
// silently.
func listDocs[T any](ctx context.Context, s store.DocumentStore, prefix string) ([]T, error) {
	log := logger.GetLogger()

	keys, err := s.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(keys))
	for _, key := range keys {
		doc, err := s.Get(ctx, key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}

		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			log.Warnw("Skipping malformed document", "key", key, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// getDoc loads and decodes a single document. store.ErrNotFound passes
// through untouched so callers can map it to their own not-found error.
func getDoc[T any](ctx context.Context, s store.DocumentStore, key string) (*T, error) {
	doc, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// setDoc encodes and writes a document, overwriting unconditionally.
func setDoc(ctx context.Context, s store.DocumentStore, key string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, doc)
}

// deleteDoc removes a key best-effort: transport failures are logged and
// swallowed, so callers proceed as if the deletion completed.
func deleteDoc(ctx context.Context, s store.DocumentStore, key string) {
	if err := s.Delete(ctx, key); err != nil {
		logger.GetLogger().Warnw("Best-effort delete failed", "key", key, "error", err)
	}
}
