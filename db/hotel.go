package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

type HotelDB struct {
	store store.DocumentStore
}

func NewHotelDB(s store.DocumentStore) *HotelDB {
	return &HotelDB{store: s}
}

func (hdb *HotelDB) CreateHotel(ctx context.Context, hotel *types.Hotel) error {
	hotel.ID = ids.NextMillis()
	hotel.CreatedAt = time.Now()
	if hotel.Status == "" {
		hotel.Status = types.BookingStatusPotential
	}
	return setDoc(ctx, hdb.store, store.HotelKey(hotel.TripID, hotel.ID), hotel)
}

func (hdb *HotelDB) GetHotel(ctx context.Context, tripID, hotelID int64) (*types.Hotel, error) {
	return getDoc[types.Hotel](ctx, hdb.store, store.HotelKey(tripID, hotelID))
}

func (hdb *HotelDB) ListHotels(ctx context.Context, tripID int64) ([]types.Hotel, error) {
	hotels, err := listDocs[types.Hotel](ctx, hdb.store, store.HotelPrefix(tripID))
	if err != nil {
		return nil, err
	}
	sort.Slice(hotels, func(i, j int) bool { return hotels[i].ID > hotels[j].ID })
	return hotels, nil
}

func (hdb *HotelDB) SaveHotel(ctx context.Context, hotel *types.Hotel) error {
	return setDoc(ctx, hdb.store, store.HotelKey(hotel.TripID, hotel.ID), hotel)
}

func (hdb *HotelDB) DeleteHotel(ctx context.Context, tripID, hotelID int64) {
	deleteDoc(ctx, hdb.store, store.HotelKey(tripID, hotelID))
}
