package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

type FlightDB struct {
	store store.DocumentStore
}

func NewFlightDB(s store.DocumentStore) *FlightDB {
	return &FlightDB{store: s}
}

func (fdb *FlightDB) CreateFlight(ctx context.Context, flight *types.Flight) error {
	flight.ID = ids.NextMillis()
	flight.CreatedAt = time.Now()
	if flight.Status == "" {
		flight.Status = types.BookingStatusPotential
	}
	return setDoc(ctx, fdb.store, store.FlightKey(flight.TripID, flight.ID), flight)
}

func (fdb *FlightDB) GetFlight(ctx context.Context, tripID, flightID int64) (*types.Flight, error) {
	return getDoc[types.Flight](ctx, fdb.store, store.FlightKey(tripID, flightID))
}

func (fdb *FlightDB) ListFlights(ctx context.Context, tripID int64) ([]types.Flight, error) {
	flights, err := listDocs[types.Flight](ctx, fdb.store, store.FlightPrefix(tripID))
	if err != nil {
		return nil, err
	}
	sort.Slice(flights, func(i, j int) bool { return flights[i].ID > flights[j].ID })
	return flights, nil
}

// SaveFlight writes a modified flight back at its key. ID and creator are
// never changed by updates.
func (fdb *FlightDB) SaveFlight(ctx context.Context, flight *types.Flight) error {
	return setDoc(ctx, fdb.store, store.FlightKey(flight.TripID, flight.ID), flight)
}

func (fdb *FlightDB) DeleteFlight(ctx context.Context, tripID, flightID int64) {
	deleteDoc(ctx, fdb.store, store.FlightKey(tripID, flightID))
}
