// Package redis implements the document store on a Redis instance. Keys map
// one-to-one onto Redis keys; prefix listings use cursor-based SCAN.
package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/triplogue/triplogue-backend/store"
)

var _ store.DocumentStore = (*DocumentStore)(nil)

const scanBatchSize = 200

// DocumentStore persists documents as plain Redis string values.
type DocumentStore struct {
	rdb *redis.Client
}

// NewDocumentStore creates a store backed by the given Redis client.
func NewDocumentStore(rdb *redis.Client) *DocumentStore {
	return &DocumentStore{rdb: rdb}
}

func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentStore) Set(ctx context.Context, key string, doc []byte) error {
	return s.rdb.Set(ctx, key, doc, 0).Err()
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	// DEL of a missing key is already a no-op in Redis.
	return s.rdb.Del(ctx, key).Err()
}

func (s *DocumentStore) List(ctx context.Context, prefix string) ([]string, error) {
	match := escapeGlob(prefix) + "*"

	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.rdb.Scan(ctx, cursor, match, scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		// SCAN matches glob patterns, which is broader than a literal
		// prefix only when the prefix contains glob metacharacters;
		// escaping above keeps the match exact, so no re-filter needed.
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return keys, nil
}

// escapeGlob escapes glob metacharacters so SCAN MATCH treats the prefix
// literally. Trip ids are numeric but user ids come from the identity
// provider and are not under our control.
func escapeGlob(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`*`, `\*`,
		`?`, `\?`,
		`[`, `\[`,
		`]`, `\]`,
	)
	return r.Replace(s)
}
