package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

type PhotoDB struct {
	store store.DocumentStore
}

func NewPhotoDB(s store.DocumentStore) *PhotoDB {
	return &PhotoDB{store: s}
}

func (pdb *PhotoDB) CreatePhoto(ctx context.Context, photo *types.Photo) error {
	photo.ID = ids.NextMillis()
	photo.CreatedAt = time.Now()
	return setDoc(ctx, pdb.store, store.PhotoKey(photo.TripID, photo.ID), photo)
}

func (pdb *PhotoDB) ListPhotos(ctx context.Context, tripID int64) ([]types.Photo, error) {
	photos, err := listDocs[types.Photo](ctx, pdb.store, store.PhotoPrefix(tripID))
	if err != nil {
		return nil, err
	}
	sort.Slice(photos, func(i, j int) bool { return photos[i].ID > photos[j].ID })
	return photos, nil
}

func (pdb *PhotoDB) DeletePhoto(ctx context.Context, tripID, photoID int64) {
	deleteDoc(ctx, pdb.store, store.PhotoKey(tripID, photoID))
}
