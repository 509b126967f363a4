package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/triplogue/triplogue-backend/types"
)

// The key layout is the persisted-data contract; these literals must never
// change shape.
func TestKeyLayout(t *testing.T) {
	assert.Equal(t, "trip:1700000000001", TripKey(1700000000001))
	assert.Equal(t, "flight:7:8", FlightKey(7, 8))
	assert.Equal(t, "hotel:7:9", HotelKey(7, 9))
	assert.Equal(t, "transport:7:10", TransportKey(7, 10))
	assert.Equal(t, "place:7:eat:11", PlaceKey(7, types.PlaceKindEat, 11))
	assert.Equal(t, "place:7:visit:12", PlaceKey(7, types.PlaceKindVisit, 12))
	assert.Equal(t, "photo:7:13", PhotoKey(7, 13))
	assert.Equal(t, "scrapbook:7:14", ScrapbookKey(7, 14))
	assert.Equal(t, "itinerary:7:date:2024-05-01", ItineraryDateKey(7, "2024-05-01"))
	assert.Equal(t, "packing:7:shared:15", PackingSharedKey(7, 15))
	assert.Equal(t, "packing:7:user:alice:16", PackingUserKey(7, "alice", 16))
	assert.Equal(t, "shopping:7:user:alice:17", ShoppingKey(7, "alice", 17))
	assert.Equal(t, "expense:7:shared:18", ExpenseSharedKey(7, 18))
	assert.Equal(t, "expense:7:user:alice:19", ExpenseUserKey(7, "alice", 19))
	assert.Equal(t, "budgetLimits:7:shared", BudgetLimitsKey(7, types.BudgetModeShared))
	assert.Equal(t, "budgetLimits:7:mine", BudgetLimitsKey(7, types.BudgetModeMine))
	assert.Equal(t, "user:alice", UserKey("alice"))
}

func TestPrefixesEndWithSeparator(t *testing.T) {
	prefixes := []string{
		TripListPrefix,
		FlightPrefix(7),
		HotelPrefix(7),
		TransportPrefix(7),
		PlacePrefix(7),
		PlaceKindPrefix(7, types.PlaceKindEat),
		PhotoPrefix(7),
		ScrapbookPrefix(7),
		ItineraryPrefix(7),
		PackingSharedPrefix(7),
		PackingUserPrefix(7, "alice"),
		ShoppingUserPrefix(7, "alice"),
		ShoppingAllPrefix(7),
		ExpenseSharedPrefix(7),
		ExpenseUserPrefix(7, "alice"),
	}
	for _, p := range prefixes {
		assert.Equal(t, byte(':'), p[len(p)-1], "prefix %q", p)
	}
}
