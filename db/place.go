package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

type PlaceDB struct {
	store store.DocumentStore
}

func NewPlaceDB(s store.DocumentStore) *PlaceDB {
	return &PlaceDB{store: s}
}

func (pdb *PlaceDB) CreatePlace(ctx context.Context, place *types.Place) error {
	place.ID = ids.NextMillis()
	place.CreatedAt = time.Now()
	return setDoc(ctx, pdb.store, store.PlaceKey(place.TripID, place.Kind, place.ID), place)
}

func (pdb *PlaceDB) GetPlace(ctx context.Context, tripID int64, kind types.PlaceKind, placeID int64) (*types.Place, error) {
	return getDoc[types.Place](ctx, pdb.store, store.PlaceKey(tripID, kind, placeID))
}

// ListPlaces returns the trip's places newest first. With an empty kind it
// covers both eat and visit namespaces.
func (pdb *PlaceDB) ListPlaces(ctx context.Context, tripID int64, kind types.PlaceKind) ([]types.Place, error) {
	prefix := store.PlacePrefix(tripID)
	if kind != "" {
		prefix = store.PlaceKindPrefix(tripID, kind)
	}

	places, err := listDocs[types.Place](ctx, pdb.store, prefix)
	if err != nil {
		return nil, err
	}
	sort.Slice(places, func(i, j int) bool { return places[i].ID > places[j].ID })
	return places, nil
}

func (pdb *PlaceDB) SavePlace(ctx context.Context, place *types.Place) error {
	return setDoc(ctx, pdb.store, store.PlaceKey(place.TripID, place.Kind, place.ID), place)
}

func (pdb *PlaceDB) DeletePlace(ctx context.Context, tripID int64, kind types.PlaceKind, placeID int64) {
	deleteDoc(ctx, pdb.store, store.PlaceKey(tripID, kind, placeID))
}
