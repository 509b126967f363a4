package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

type TransportDB struct {
	store store.DocumentStore
}

func NewTransportDB(s store.DocumentStore) *TransportDB {
	return &TransportDB{store: s}
}

func (tdb *TransportDB) CreateTransport(ctx context.Context, transport *types.Transport) error {
	transport.ID = ids.NextMillis()
	transport.CreatedAt = time.Now()
	if transport.Status == "" {
		transport.Status = types.BookingStatusPotential
	}
	return setDoc(ctx, tdb.store, store.TransportKey(transport.TripID, transport.ID), transport)
}

func (tdb *TransportDB) GetTransport(ctx context.Context, tripID, transportID int64) (*types.Transport, error) {
	return getDoc[types.Transport](ctx, tdb.store, store.TransportKey(tripID, transportID))
}

func (tdb *TransportDB) ListTransports(ctx context.Context, tripID int64) ([]types.Transport, error) {
	transports, err := listDocs[types.Transport](ctx, tdb.store, store.TransportPrefix(tripID))
	if err != nil {
		return nil, err
	}
	sort.Slice(transports, func(i, j int) bool { return transports[i].ID > transports[j].ID })
	return transports, nil
}

func (tdb *TransportDB) SaveTransport(ctx context.Context, transport *types.Transport) error {
	return setDoc(ctx, tdb.store, store.TransportKey(transport.TripID, transport.ID), transport)
}

func (tdb *TransportDB) DeleteTransport(ctx context.Context, tripID, transportID int64) {
	deleteDoc(ctx, tdb.store, store.TransportKey(tripID, transportID))
}
