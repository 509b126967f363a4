package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

type TripDB struct {
	store store.DocumentStore
}

func NewTripDB(s store.DocumentStore) *TripDB {
	return &TripDB{store: s}
}

// CreateTrip writes a new trip document. The creator becomes the owner and
// the sole member.
func (tdb *TripDB) CreateTrip(ctx context.Context, trip *types.Trip) error {
	trip.ID = ids.NextMillis()
	trip.OwnerID = trip.CreatedBy
	trip.MemberIDs = []string{trip.CreatedBy}
	trip.CreatedAt = time.Now()
	if trip.Status == "" {
		trip.Status = types.TripStatusUpcoming
	}
	return setDoc(ctx, tdb.store, store.TripKey(trip.ID), trip)
}

func (tdb *TripDB) GetTrip(ctx context.Context, id int64) (*types.Trip, error) {
	return getDoc[types.Trip](ctx, tdb.store, store.TripKey(id))
}

// ListTripsForUser returns every trip the user is a member of, newest first.
func (tdb *TripDB) ListTripsForUser(ctx context.Context, userID string) ([]types.Trip, error) {
	trips, err := listDocs[types.Trip](ctx, tdb.store, store.TripListPrefix)
	if err != nil {
		return nil, err
	}

	visible := trips[:0]
	for _, t := range trips {
		if t.IsMember(userID) {
			visible = append(visible, t)
		}
	}
	sort.Slice(visible, func(i, j int) bool { return visible[i].ID > visible[j].ID })
	return visible, nil
}

// UpdateTrip merges the non-zero update fields into the stored document and
// writes it back at the same key.
func (tdb *TripDB) UpdateTrip(ctx context.Context, id int64, update *types.TripUpdate) (*types.Trip, error) {
	trip, err := tdb.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Destination != "" {
		trip.Destination = update.Destination
	}
	if update.Country != "" {
		trip.Country = update.Country
	}
	if update.Year != 0 {
		trip.Year = update.Year
	}
	if update.StartDate != "" {
		trip.StartDate = update.StartDate
	}
	if update.EndDate != "" {
		trip.EndDate = update.EndDate
	}
	if update.Status != "" {
		trip.Status = update.Status
	}

	if err := setDoc(ctx, tdb.store, store.TripKey(id), trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// AddMember appends a member id, deduplicated, and writes the trip back.
func (tdb *TripDB) AddMember(ctx context.Context, id int64, userID string) (*types.Trip, error) {
	trip, err := tdb.GetTrip(ctx, id)
	if err != nil {
		return nil, err
	}

	if trip.IsMember(userID) {
		return trip, nil
	}
	trip.MemberIDs = append(trip.MemberIDs, userID)

	if err := setDoc(ctx, tdb.store, store.TripKey(id), trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// DeleteTrip removes the trip key outright, best-effort.
func (tdb *TripDB) DeleteTrip(ctx context.Context, id int64) {
	deleteDoc(ctx, tdb.store, store.TripKey(id))
}
