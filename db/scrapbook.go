package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

type ScrapbookDB struct {
	store store.DocumentStore
}

func NewScrapbookDB(s store.DocumentStore) *ScrapbookDB {
	return &ScrapbookDB{store: s}
}

func (sdb *ScrapbookDB) CreateEntry(ctx context.Context, entry *types.ScrapbookEntry) error {
	entry.ID = ids.NextMillis()
	entry.CreatedAt = time.Now()
	return setDoc(ctx, sdb.store, store.ScrapbookKey(entry.TripID, entry.ID), entry)
}

// ListEntries sorts ascending by day number, unlike the other collections,
// so the scrapbook reads in trip order.
func (sdb *ScrapbookDB) ListEntries(ctx context.Context, tripID int64) ([]types.ScrapbookEntry, error) {
	entries, err := listDocs[types.ScrapbookEntry](ctx, sdb.store, store.ScrapbookPrefix(tripID))
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day < entries[j].Day
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func (sdb *ScrapbookDB) DeleteEntry(ctx context.Context, tripID, entryID int64) {
	deleteDoc(ctx, sdb.store, store.ScrapbookKey(tripID, entryID))
}
