package types

import "time"

type ItineraryCategory string

const (
	ItineraryCategoryActivity  ItineraryCategory = "activity"
	ItineraryCategoryVisit     ItineraryCategory = "visit"
	ItineraryCategoryEat       ItineraryCategory = "eat"
	ItineraryCategoryFlight    ItineraryCategory = "flight"
	ItineraryCategoryHotel     ItineraryCategory = "hotel"
	ItineraryCategoryTransport ItineraryCategory = "transport"
)

// IsValid checks if the category is one of the known itinerary categories.
func (c ItineraryCategory) IsValid() bool {
	switch c {
	case ItineraryCategoryActivity, ItineraryCategoryVisit, ItineraryCategoryEat,
		ItineraryCategoryFlight, ItineraryCategoryHotel, ItineraryCategoryTransport:
		return true
	default:
		return false
	}
}

// ItineraryItem is a single scheduled activity within a day. Items are
// immutable once created except by deletion.
type ItineraryItem struct {
	ID        int64             `json:"id"`
	Time      string            `json:"time"` // HH:MM or empty
	Activity  string            `json:"activity"`
	Location  string            `json:"location"`
	Notes     string            `json:"notes,omitempty"`
	Category  ItineraryCategory `json:"category"`
	CreatedBy string            `json:"createdByUid"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ItineraryDay is one calendar date of a trip with its ordered activities.
// The day number is always derived from the trip's date range, never from
// the stored record.
type ItineraryDay struct {
	Day   int             `json:"day"` // 1-based position within the trip
	Date  string          `json:"date"`
	Items []ItineraryItem `json:"items"`
}

// ItineraryDayRecord is the stored shape of a day document. Only the items
// matter; date is kept for debuggability of raw documents.
type ItineraryDayRecord struct {
	Date  string          `json:"date"`
	Items []ItineraryItem `json:"items"`
}

// ItineraryItemCreate is the payload for adding an activity to a day.
type ItineraryItemCreate struct {
	Day      int               `json:"day" binding:"required"`
	Time     string            `json:"time"`
	Activity string            `json:"activity" binding:"required"`
	Location string            `json:"location"`
	Notes    string            `json:"notes"`
	Category ItineraryCategory `json:"category"`
}
