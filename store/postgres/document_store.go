// Package postgres implements the document store on PostgreSQL. All
// documents live in a single documents table keyed by the namespace path;
// prefix listings become an indexed range scan on the primary key.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/triplogue/triplogue-backend/store"
)

var _ store.DocumentStore = (*DocumentStore)(nil)

// PgxPool is the subset of pgxpool.Pool the store needs. pgxmock satisfies
// it for tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DocumentStore persists documents as JSONB rows.
type DocumentStore struct {
	pool PgxPool
}

// NewDocumentStore creates a store backed by the given connection pool.
func NewDocumentStore(pool PgxPool) *DocumentStore {
	return &DocumentStore{pool: pool}
}

func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT doc FROM documents WHERE key = $1`

	var doc []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentStore) Set(ctx context.Context, key string, doc []byte) error {
	query := `
		INSERT INTO documents (key, doc, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET doc = EXCLUDED.doc, updated_at = NOW()`

	_, err := s.pool.Exec(ctx, query, key, doc)
	return err
}

func (s *DocumentStore) Delete(ctx context.Context, key string) error {
	// Zero rows affected means the key was already gone, which is fine.
	_, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE key = $1`, key)
	return err
}

func (s *DocumentStore) List(ctx context.Context, prefix string) ([]string, error) {
	// Prefix match as a range scan on the primary key: every key k with
	// prefix <= k < prefix + maxChar starts with the prefix. Keys are
	// ASCII paths, so U+FFFF is a safe upper sentinel.
	query := `SELECT key FROM documents WHERE key >= $1 AND key < $2`

	rows, err := s.pool.Query(ctx, query, prefix, prefix+"\uffff")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
