package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplogue/triplogue-backend/store"
)

func TestGetSetRoundTrip(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "trip:1", []byte(`{"id":1}`)))

	doc, err := s.Get(ctx, "trip:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":1}`), doc)
}

func TestGetMissingKey(t *testing.T) {
	s := NewDocumentStore()

	_, err := s.Get(context.Background(), "trip:404")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSetOverwrites(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "trip:1", []byte("old")))
	require.NoError(t, s.Set(ctx, "trip:1", []byte("new")))

	doc, err := s.Get(ctx, "trip:1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), doc)
	assert.Equal(t, 1, s.Len())
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "trip:1", []byte("x")))
	require.NoError(t, s.Delete(ctx, "trip:1"))
	require.NoError(t, s.Delete(ctx, "trip:1"))

	_, err := s.Get(ctx, "trip:1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListPrefixDoesNotCrossIDBoundaries(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	// flight:1: and flight:10: must stay distinct collections; the trailing
	// colon in the prefix is what keeps them apart.
	require.NoError(t, s.Set(ctx, "flight:1:100", []byte("a")))
	require.NoError(t, s.Set(ctx, "flight:1:200", []byte("b")))
	require.NoError(t, s.Set(ctx, "flight:10:300", []byte("c")))

	keys, err := s.List(ctx, "flight:1:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"flight:1:100", "flight:1:200"}, keys)
}

func TestListEmptyPrefixReturnsEverything(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "trip:1", []byte("a")))
	require.NoError(t, s.Set(ctx, "user:u1", []byte("b")))

	keys, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestStoredDocumentsAreIsolatedFromCallers(t *testing.T) {
	s := NewDocumentStore()
	ctx := context.Background()

	original := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", original))
	original[0] = 'z'

	doc, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), doc)

	doc[0] = 'q'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
