package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// PackingDB persists packing items under either the trip-wide shared
// namespace or a per-user namespace, selected by the item's mode.
type PackingDB struct {
	store store.DocumentStore
}

func NewPackingDB(s store.DocumentStore) *PackingDB {
	return &PackingDB{store: s}
}

func (pdb *PackingDB) packingKey(item *types.PackingItem, userID string) string {
	if item.Mode == types.ListModePersonal {
		return store.PackingUserKey(item.TripID, userID, item.ID)
	}
	return store.PackingSharedKey(item.TripID, item.ID)
}

func (pdb *PackingDB) CreatePackingItem(ctx context.Context, item *types.PackingItem, userID string) error {
	item.ID = ids.NextMillis()
	item.CreatedAt = time.Now()
	if item.Mode == "" {
		item.Mode = types.ListModeShared
	}
	return setDoc(ctx, pdb.store, pdb.packingKey(item, userID), item)
}

// ListPackingItems returns one mode's items, newest first. Personal mode
// lists only the given user's namespace.
func (pdb *PackingDB) ListPackingItems(ctx context.Context, tripID int64, mode types.ListMode, userID string) ([]types.PackingItem, error) {
	prefix := store.PackingSharedPrefix(tripID)
	if mode == types.ListModePersonal {
		prefix = store.PackingUserPrefix(tripID, userID)
	}

	items, err := listDocs[types.PackingItem](ctx, pdb.store, prefix)
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}

func (pdb *PackingDB) GetPackingItem(ctx context.Context, tripID, itemID int64, mode types.ListMode, userID string) (*types.PackingItem, error) {
	item := &types.PackingItem{TripID: tripID, ID: itemID, Mode: mode}
	return getDoc[types.PackingItem](ctx, pdb.store, pdb.packingKey(item, userID))
}

func (pdb *PackingDB) SavePackingItem(ctx context.Context, item *types.PackingItem, userID string) error {
	return setDoc(ctx, pdb.store, pdb.packingKey(item, userID), item)
}

func (pdb *PackingDB) DeletePackingItem(ctx context.Context, tripID, itemID int64, mode types.ListMode, userID string) {
	item := &types.PackingItem{TripID: tripID, ID: itemID, Mode: mode}
	deleteDoc(ctx, pdb.store, pdb.packingKey(item, userID))
}

// ShoppingDB persists shopping items, always scoped to a single user.
type ShoppingDB struct {
	store store.DocumentStore
}

func NewShoppingDB(s store.DocumentStore) *ShoppingDB {
	return &ShoppingDB{store: s}
}

func (sdb *ShoppingDB) CreateShoppingItem(ctx context.Context, item *types.ShoppingItem) error {
	item.ID = ids.NextMillis()
	item.CreatedAt = time.Now()
	if item.OwnerID == "" {
		item.OwnerID = item.CreatedBy
	}
	return setDoc(ctx, sdb.store, store.ShoppingKey(item.TripID, item.OwnerID, item.ID), item)
}

func (sdb *ShoppingDB) GetShoppingItem(ctx context.Context, tripID int64, userID string, itemID int64) (*types.ShoppingItem, error) {
	return getDoc[types.ShoppingItem](ctx, sdb.store, store.ShoppingKey(tripID, userID, itemID))
}

// ListShoppingItems returns one user's items, newest first.
func (sdb *ShoppingDB) ListShoppingItems(ctx context.Context, tripID int64, userID string) ([]types.ShoppingItem, error) {
	items, err := listDocs[types.ShoppingItem](ctx, sdb.store, store.ShoppingUserPrefix(tripID, userID))
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}

// ListAllShoppingItems returns every member's items for budget aggregation.
func (sdb *ShoppingDB) ListAllShoppingItems(ctx context.Context, tripID int64) ([]types.ShoppingItem, error) {
	return listDocs[types.ShoppingItem](ctx, sdb.store, store.ShoppingAllPrefix(tripID))
}

func (sdb *ShoppingDB) SaveShoppingItem(ctx context.Context, item *types.ShoppingItem) error {
	return setDoc(ctx, sdb.store, store.ShoppingKey(item.TripID, item.OwnerID, item.ID), item)
}

func (sdb *ShoppingDB) DeleteShoppingItem(ctx context.Context, tripID int64, userID string, itemID int64) {
	deleteDoc(ctx, sdb.store, store.ShoppingKey(tripID, userID, itemID))
}
