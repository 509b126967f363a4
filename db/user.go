package db

import (
	"context"

	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// UserDB persists the display profiles used for attribution and payer
// lists. Authentication itself lives with the external identity provider.
type UserDB struct {
	store store.DocumentStore
}

func NewUserDB(s store.DocumentStore) *UserDB {
	return &UserDB{store: s}
}

func (udb *UserDB) GetProfile(ctx context.Context, userID string) (*types.UserProfile, error) {
	return getDoc[types.UserProfile](ctx, udb.store, store.UserKey(userID))
}

func (udb *UserDB) SaveProfile(ctx context.Context, profile *types.UserProfile) error {
	return setDoc(ctx, udb.store, store.UserKey(profile.ID), profile)
}
