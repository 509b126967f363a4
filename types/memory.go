package types

import "time"

// Photo is an uploaded trip photo. Upload and encoding happen elsewhere;
// only the resulting URL is stored here.
type Photo struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"tripId"`
	Caption   string    `json:"caption,omitempty"`
	URL       string    `json:"url"`
	TakenAt   string    `json:"takenAt,omitempty"` // YYYY-MM-DD
	CreatedBy string    `json:"createdByUid"`
	CreatedAt time.Time `json:"createdAt"`
}

// ScrapbookEntry is a journal note for one day of the trip. Entries list
// ascending by day number, unlike every other collection.
type ScrapbookEntry struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"tripId"`
	Day       int       `json:"day"`
	Title     string    `json:"title"`
	Text      string    `json:"text,omitempty"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	CreatedBy string    `json:"createdByUid"`
	CreatedAt time.Time `json:"createdAt"`
}
