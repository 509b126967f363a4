package store

import (
	"fmt"

	"github.com/triplogue/triplogue-backend/types"
)

// Key builders for the persisted-state namespace. The layout is part of the
// stored data contract and must not change shape:
//
//	trip:<tripId>
//	flight:<tripId>:<flightId>
//	hotel:<tripId>:<hotelId>
//	transport:<tripId>:<transportId>
//	place:<tripId>:<eat|visit>:<placeId>
//	photo:<tripId>:<photoId>
//	scrapbook:<tripId>:<entryId>
//	itinerary:<tripId>:date:<YYYY-MM-DD>
//	packing:<tripId>:shared:<itemId> | packing:<tripId>:user:<uid>:<itemId>
//	shopping:<tripId>:user:<uid>:<itemId>
//	expense:<tripId>:shared:<expenseId> | expense:<tripId>:user:<uid>:<expenseId>
//	budgetLimits:<tripId>:<shared|mine>
//	user:<uid>
//
// All numeric ids are millisecond timestamps rendered in decimal.

const TripListPrefix = "trip:"

func TripKey(tripID int64) string {
	return fmt.Sprintf("trip:%d", tripID)
}

func FlightKey(tripID, flightID int64) string {
	return fmt.Sprintf("flight:%d:%d", tripID, flightID)
}

func FlightPrefix(tripID int64) string {
	return fmt.Sprintf("flight:%d:", tripID)
}

func HotelKey(tripID, hotelID int64) string {
	return fmt.Sprintf("hotel:%d:%d", tripID, hotelID)
}

func HotelPrefix(tripID int64) string {
	return fmt.Sprintf("hotel:%d:", tripID)
}

func TransportKey(tripID, transportID int64) string {
	return fmt.Sprintf("transport:%d:%d", tripID, transportID)
}

func TransportPrefix(tripID int64) string {
	return fmt.Sprintf("transport:%d:", tripID)
}

func PlaceKey(tripID int64, kind types.PlaceKind, placeID int64) string {
	return fmt.Sprintf("place:%d:%s:%d", tripID, kind, placeID)
}

// PlacePrefix covers both eat and visit places for a trip.
func PlacePrefix(tripID int64) string {
	return fmt.Sprintf("place:%d:", tripID)
}

func PlaceKindPrefix(tripID int64, kind types.PlaceKind) string {
	return fmt.Sprintf("place:%d:%s:", tripID, kind)
}

func PhotoKey(tripID, photoID int64) string {
	return fmt.Sprintf("photo:%d:%d", tripID, photoID)
}

func PhotoPrefix(tripID int64) string {
	return fmt.Sprintf("photo:%d:", tripID)
}

func ScrapbookKey(tripID, entryID int64) string {
	return fmt.Sprintf("scrapbook:%d:%d", tripID, entryID)
}

func ScrapbookPrefix(tripID int64) string {
	return fmt.Sprintf("scrapbook:%d:", tripID)
}

func ItineraryDateKey(tripID int64, date string) string {
	return fmt.Sprintf("itinerary:%d:date:%s", tripID, date)
}

func ItineraryPrefix(tripID int64) string {
	return fmt.Sprintf("itinerary:%d:date:", tripID)
}

func PackingSharedKey(tripID, itemID int64) string {
	return fmt.Sprintf("packing:%d:shared:%d", tripID, itemID)
}

func PackingSharedPrefix(tripID int64) string {
	return fmt.Sprintf("packing:%d:shared:", tripID)
}

func PackingUserKey(tripID int64, userID string, itemID int64) string {
	return fmt.Sprintf("packing:%d:user:%s:%d", tripID, userID, itemID)
}

func PackingUserPrefix(tripID int64, userID string) string {
	return fmt.Sprintf("packing:%d:user:%s:", tripID, userID)
}

func ShoppingKey(tripID int64, userID string, itemID int64) string {
	return fmt.Sprintf("shopping:%d:user:%s:%d", tripID, userID, itemID)
}

func ShoppingUserPrefix(tripID int64, userID string) string {
	return fmt.Sprintf("shopping:%d:user:%s:", tripID, userID)
}

// ShoppingAllPrefix covers every member's shopping items for a trip; the
// budget aggregation scans it across users.
func ShoppingAllPrefix(tripID int64) string {
	return fmt.Sprintf("shopping:%d:user:", tripID)
}

func ExpenseSharedKey(tripID, expenseID int64) string {
	return fmt.Sprintf("expense:%d:shared:%d", tripID, expenseID)
}

func ExpenseSharedPrefix(tripID int64) string {
	return fmt.Sprintf("expense:%d:shared:", tripID)
}

func ExpenseUserKey(tripID int64, userID string, expenseID int64) string {
	return fmt.Sprintf("expense:%d:user:%s:%d", tripID, userID, expenseID)
}

func ExpenseUserPrefix(tripID int64, userID string) string {
	return fmt.Sprintf("expense:%d:user:%s:", tripID, userID)
}

func BudgetLimitsKey(tripID int64, mode types.BudgetMode) string {
	return fmt.Sprintf("budgetLimits:%d:%s", tripID, mode)
}

func UserKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
