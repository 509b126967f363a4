package models

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/pkg/costsplit"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// Hotels emit their check-in and check-out itinerary items at fixed times.
const (
	hotelCheckInTime  = "15:00"
	hotelCheckOutTime = "11:00"
)

// BookingModel owns the flight, hotel, transport, and place lifecycles,
// including the confirmation transitions that emit itinerary items. The
// status write always lands first; itinerary emission follows as a second,
// independent write.
type BookingModel struct {
	flightDB    *db.FlightDB
	hotelDB     *db.HotelDB
	transportDB *db.TransportDB
	placeDB     *db.PlaceDB
	itinerary   *ItineraryModel
}

func NewBookingModel(flightDB *db.FlightDB, hotelDB *db.HotelDB, transportDB *db.TransportDB, placeDB *db.PlaceDB, itinerary *ItineraryModel) *BookingModel {
	return &BookingModel{
		flightDB:    flightDB,
		hotelDB:     hotelDB,
		transportDB: transportDB,
		placeDB:     placeDB,
		itinerary:   itinerary,
	}
}

// --- Flights ---

func (bm *BookingModel) CreateFlight(ctx context.Context, flight *types.Flight) error {
	if flight.Airline == "" && flight.FlightNumber == "" {
		return errors.ValidationFailed("Airline or flight number is required", "")
	}
	if err := bm.flightDB.CreateFlight(ctx, flight); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (bm *BookingModel) ListFlights(ctx context.Context, tripID int64) ([]types.Flight, error) {
	flights, err := bm.flightDB.ListFlights(ctx, tripID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return flights, nil
}

func (bm *BookingModel) DeleteFlight(ctx context.Context, tripID, flightID int64) {
	bm.flightDB.DeleteFlight(ctx, tripID, flightID)
}

// ConfirmFlight flips the flight to confirmed with the entered cost, then
// emits a departure itinerary item and, when a return date is present, a
// return item with the route reversed.
func (bm *BookingModel) ConfirmFlight(ctx context.Context, tripID, flightID int64, req *types.ConfirmRequest, userID string) (*types.Flight, error) {
	flight, err := bm.flightDB.GetFlight(ctx, tripID, flightID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("Flight", flightID)
		}
		return nil, errors.NewDatabaseError(err)
	}

	flight.Status = types.BookingStatusConfirmed
	flight.Cost, flight.PaidBy, err = applyCost(req)
	if err != nil {
		return nil, err
	}
	if err := bm.flightDB.SaveFlight(ctx, flight); err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	label := flightLabel(flight)
	bm.emit(ctx, tripID, flight.Date, flight.Time, label,
		fmt.Sprintf("%s → %s", flight.Departure, flight.Arrival),
		types.ItineraryCategoryFlight, userID)
	if flight.ReturnDate != "" {
		bm.emit(ctx, tripID, flight.ReturnDate, flight.ReturnTime, label,
			fmt.Sprintf("%s → %s", flight.Arrival, flight.Departure),
			types.ItineraryCategoryFlight, userID)
	}
	return flight, nil
}

// --- Hotels ---

func (bm *BookingModel) CreateHotel(ctx context.Context, hotel *types.Hotel) error {
	if hotel.Name == "" {
		return errors.ValidationFailed("Hotel name is required", "")
	}
	if err := bm.hotelDB.CreateHotel(ctx, hotel); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (bm *BookingModel) ListHotels(ctx context.Context, tripID int64) ([]types.Hotel, error) {
	hotels, err := bm.hotelDB.ListHotels(ctx, tripID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return hotels, nil
}

func (bm *BookingModel) DeleteHotel(ctx context.Context, tripID, hotelID int64) {
	bm.hotelDB.DeleteHotel(ctx, tripID, hotelID)
}

// ConfirmHotel flips the hotel to confirmed and emits a check-in item at
// 15:00 on the check-in date and a check-out item at 11:00 on the check-out
// date.
func (bm *BookingModel) ConfirmHotel(ctx context.Context, tripID, hotelID int64, req *types.ConfirmRequest, userID string) (*types.Hotel, error) {
	hotel, err := bm.hotelDB.GetHotel(ctx, tripID, hotelID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("Hotel", hotelID)
		}
		return nil, errors.NewDatabaseError(err)
	}

	hotel.Status = types.BookingStatusConfirmed
	hotel.Cost, hotel.PaidBy, err = applyCost(req)
	if err != nil {
		return nil, err
	}
	if err := bm.hotelDB.SaveHotel(ctx, hotel); err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	bm.emit(ctx, tripID, hotel.CheckIn, hotelCheckInTime,
		fmt.Sprintf("Check in: %s", hotel.Name), hotel.Address,
		types.ItineraryCategoryHotel, userID)
	if hotel.CheckOut != "" {
		bm.emit(ctx, tripID, hotel.CheckOut, hotelCheckOutTime,
			fmt.Sprintf("Check out: %s", hotel.Name), hotel.Address,
			types.ItineraryCategoryHotel, userID)
	}
	return hotel, nil
}

// --- Transports ---

func (bm *BookingModel) CreateTransport(ctx context.Context, transport *types.Transport) error {
	if transport.From == "" || transport.To == "" {
		return errors.ValidationFailed("Transport route is required", "both from and to must be set")
	}
	if err := bm.transportDB.CreateTransport(ctx, transport); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (bm *BookingModel) ListTransports(ctx context.Context, tripID int64) ([]types.Transport, error) {
	transports, err := bm.transportDB.ListTransports(ctx, tripID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return transports, nil
}

func (bm *BookingModel) DeleteTransport(ctx context.Context, tripID, transportID int64) {
	bm.transportDB.DeleteTransport(ctx, tripID, transportID)
}

// ConfirmTransport flips the transport to confirmed and emits one itinerary
// item at its date and time.
func (bm *BookingModel) ConfirmTransport(ctx context.Context, tripID, transportID int64, req *types.ConfirmRequest, userID string) (*types.Transport, error) {
	transport, err := bm.transportDB.GetTransport(ctx, tripID, transportID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("Transport", transportID)
		}
		return nil, errors.NewDatabaseError(err)
	}

	transport.Status = types.BookingStatusConfirmed
	transport.Cost, transport.PaidBy, err = applyCost(req)
	if err != nil {
		return nil, err
	}
	if err := bm.transportDB.SaveTransport(ctx, transport); err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	bm.emit(ctx, tripID, transport.Date, transport.Time, transportLabel(transport),
		fmt.Sprintf("%s → %s", transport.From, transport.To),
		types.ItineraryCategoryTransport, userID)
	return transport, nil
}

// --- Places ---

func (bm *BookingModel) CreatePlace(ctx context.Context, place *types.Place) error {
	if place.Name == "" {
		return errors.ValidationFailed("Place name is required", "")
	}
	if !place.Kind.IsValid() {
		return errors.ValidationFailed("Invalid place kind", string(place.Kind))
	}
	if err := bm.placeDB.CreatePlace(ctx, place); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (bm *BookingModel) ListPlaces(ctx context.Context, tripID int64, kind types.PlaceKind) ([]types.Place, error) {
	places, err := bm.placeDB.ListPlaces(ctx, tripID, kind)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return places, nil
}

func (bm *BookingModel) DeletePlace(ctx context.Context, tripID int64, kind types.PlaceKind, placeID int64) {
	bm.placeDB.DeletePlace(ctx, tripID, kind, placeID)
}

// ConfirmPlace marks the place confirmed and emits exactly one itinerary
// item at the user-chosen date and time from the request.
func (bm *BookingModel) ConfirmPlace(ctx context.Context, tripID int64, kind types.PlaceKind, placeID int64, req *types.ConfirmRequest, userID string) (*types.Place, error) {
	if req.Date == "" {
		return nil, errors.ValidationFailed("A date is required to schedule the place", "")
	}
	place, err := bm.placeDB.GetPlace(ctx, tripID, kind, placeID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("Place", placeID)
		}
		return nil, errors.NewDatabaseError(err)
	}

	place.Confirmed = true
	if err := bm.placeDB.SavePlace(ctx, place); err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	category := types.ItineraryCategoryVisit
	if place.Kind == types.PlaceKindEat {
		category = types.ItineraryCategoryEat
	}
	bm.emit(ctx, tripID, req.Date, req.Time, place.Name, place.Address, category, userID)
	return place, nil
}

// SetPlaceVisited toggles the visited flag. Marking visited routes through
// the cost entry in the request; unmarking clears cost and paidBy.
func (bm *BookingModel) SetPlaceVisited(ctx context.Context, tripID int64, kind types.PlaceKind, placeID int64, visited bool, req *types.ConfirmRequest) (*types.Place, error) {
	place, err := bm.placeDB.GetPlace(ctx, tripID, kind, placeID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("Place", placeID)
		}
		return nil, errors.NewDatabaseError(err)
	}

	place.Visited = visited
	if visited {
		place.Cost, place.PaidBy, err = applyCost(req)
		if err != nil {
			return nil, err
		}
	} else {
		place.Cost = nil
		place.PaidBy = nil
	}

	if err := bm.placeDB.SavePlace(ctx, place); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return place, nil
}

// emit writes one itinerary item as a follow-up to a status change. The
// emission is deliberately not transactional with the status write; a
// failure here leaves the status confirmed with no itinerary entry, which
// is logged and accepted.
func (bm *BookingModel) emit(ctx context.Context, tripID int64, date, timeOfDay, activity, location string, category types.ItineraryCategory, userID string) {
	if date == "" {
		return
	}
	item := types.ItineraryItem{
		ID:        ids.NextMillis(),
		Time:      timeOfDay,
		Activity:  activity,
		Location:  location,
		Category:  category,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if err := bm.itinerary.AddItemAtDate(ctx, tripID, date, item); err != nil {
		logger.GetLogger().Warnw("Failed to emit itinerary item after confirmation",
			"trip", tripID, "date", date, "activity", activity, "error", err)
	}
}

// applyCost turns a confirmation request's cost entry into the stored cost
// and payer list. The no-cost flag records a zero cost with no payer list;
// selected payers produce an equal or custom split whose sum becomes the
// stored cost.
func applyCost(req *types.ConfirmRequest) (*float64, []types.PayerShare, error) {
	if req == nil || req.NoCost {
		zero := 0.0
		return &zero, nil, nil
	}

	if len(req.Payers) > 0 {
		var shares []types.PayerShare
		switch costsplit.SplitMode(req.SplitMode) {
		case costsplit.SplitCustom:
			shares = costsplit.Custom(req.Payers, req.Custom)
		case costsplit.SplitEqual, "":
			if req.Cost == nil {
				return nil, nil, errors.ValidationFailed("A total cost is required for an equal split", "")
			}
			shares = costsplit.Equal(*req.Cost, req.Payers)
		default:
			return nil, nil, errors.ValidationFailed("Invalid split mode", req.SplitMode)
		}
		total := costsplit.SplitTotal(shares)
		return &total, shares, nil
	}

	if req.Cost != nil {
		return req.Cost, nil, nil
	}
	return nil, nil, nil
}

func flightLabel(flight *types.Flight) string {
	parts := []string{"Flight"}
	if flight.Airline != "" {
		parts = append(parts, flight.Airline)
	}
	if flight.FlightNumber != "" {
		parts = append(parts, flight.FlightNumber)
	}
	return strings.Join(parts, " ")
}

func transportLabel(transport *types.Transport) string {
	if transport.Mode == "" {
		return "Transport"
	}
	return strings.ToUpper(transport.Mode[:1]) + transport.Mode[1:]
}
