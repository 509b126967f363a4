package db

import (
	"context"

	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// ItineraryDB persists one document per (trip, calendar date) pair. A day
// document does not exist until the first item is added to it; the merge
// engine synthesizes missing days as empty.
type ItineraryDB struct {
	store store.DocumentStore
}

func NewItineraryDB(s store.DocumentStore) *ItineraryDB {
	return &ItineraryDB{store: s}
}

// GetDay loads the stored record for one date. Returns store.ErrNotFound
// when no record exists yet.
func (idb *ItineraryDB) GetDay(ctx context.Context, tripID int64, date string) (*types.ItineraryDayRecord, error) {
	return getDoc[types.ItineraryDayRecord](ctx, idb.store, store.ItineraryDateKey(tripID, date))
}

// SaveDay writes the whole day record back, even when its item list is
// empty; emptied days are kept, not cleaned up.
func (idb *ItineraryDB) SaveDay(ctx context.Context, tripID int64, record *types.ItineraryDayRecord) error {
	return setDoc(ctx, idb.store, store.ItineraryDateKey(tripID, record.Date), record)
}

// ListDays fetches every stored day record for a trip, keyed by date string.
func (idb *ItineraryDB) ListDays(ctx context.Context, tripID int64) (map[string]types.ItineraryDayRecord, error) {
	records, err := listDocs[types.ItineraryDayRecord](ctx, idb.store, store.ItineraryPrefix(tripID))
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]types.ItineraryDayRecord, len(records))
	for _, r := range records {
		byDate[r.Date] = r
	}
	return byDate, nil
}
