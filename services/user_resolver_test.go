package services

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/store/memory"
	"github.com/triplogue/triplogue-backend/types"
)

func init() {
	logger.IsTest = true
}

func TestDisplayNameWithoutCache(t *testing.T) {
	docStore := memory.NewDocumentStore()
	userDB := db.NewUserDB(docStore)
	ctx := context.Background()

	require.NoError(t, userDB.SaveProfile(ctx, &types.UserProfile{
		ID:          "alice",
		DisplayName: "Alice W",
	}))

	resolver := NewUserResolver(userDB, nil)
	assert.Equal(t, "Alice W", resolver.DisplayName(ctx, "alice"))
}

func TestDisplayNameFallsBackToUnknown(t *testing.T) {
	resolver := NewUserResolver(db.NewUserDB(memory.NewDocumentStore()), nil)

	assert.Equal(t, UnknownUser, resolver.DisplayName(context.Background(), "ghost"))
	assert.Equal(t, UnknownUser, resolver.DisplayName(context.Background(), ""))
}

func TestDisplayNameUsesCache(t *testing.T) {
	docStore := memory.NewDocumentStore()
	userDB := db.NewUserDB(docStore)
	client, mock := redismock.NewClientMock()
	resolver := NewUserResolver(userDB, client)

	mock.ExpectGet("displayName:alice").SetVal("Cached Alice")

	assert.Equal(t, "Cached Alice", resolver.DisplayName(context.Background(), "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisplayNamePopulatesCacheOnMiss(t *testing.T) {
	docStore := memory.NewDocumentStore()
	userDB := db.NewUserDB(docStore)
	ctx := context.Background()

	require.NoError(t, userDB.SaveProfile(ctx, &types.UserProfile{
		ID:    "bob",
		Email: "bob@example.com",
	}))

	client, mock := redismock.NewClientMock()
	resolver := NewUserResolver(userDB, client)

	mock.ExpectGet("displayName:bob").RedisNil()
	mock.ExpectSet("displayName:bob", "bob@example.com", displayNameCacheTTL).SetVal("OK")

	assert.Equal(t, "bob@example.com", resolver.DisplayName(ctx, "bob"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDisplayNamesBatch(t *testing.T) {
	docStore := memory.NewDocumentStore()
	userDB := db.NewUserDB(docStore)
	ctx := context.Background()

	require.NoError(t, userDB.SaveProfile(ctx, &types.UserProfile{ID: "alice", DisplayName: "Alice W"}))

	resolver := NewUserResolver(userDB, nil)
	names := resolver.DisplayNames(ctx, []string{"alice", "ghost"})

	assert.Equal(t, map[string]string{
		"alice": "Alice W",
		"ghost": UnknownUser,
	}, names)
}
