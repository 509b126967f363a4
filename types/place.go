package types

import "time"

type PlaceKind string

const (
	PlaceKindEat   PlaceKind = "eat"
	PlaceKindVisit PlaceKind = "visit"
)

// IsValid checks if the kind is a valid place kind.
func (pk PlaceKind) IsValid() bool {
	return pk == PlaceKindEat || pk == PlaceKindVisit
}

// Place is a restaurant or sight attached to a trip. Marking it visited
// routes through a cost entry; un-visiting clears cost and paidBy.
type Place struct {
	ID          int64        `json:"id"`
	TripID      int64        `json:"tripId"`
	Kind        PlaceKind    `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Address     string       `json:"address,omitempty"`
	Rating      float64      `json:"rating,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Link        string       `json:"link,omitempty"`
	Visited     bool         `json:"visited"`
	Confirmed   bool         `json:"confirmed"`
	Cost        *float64     `json:"cost,omitempty"`
	PaidBy      []PayerShare `json:"paidBy,omitempty"`
	CreatedBy   string       `json:"createdByUid"`
	CreatedAt   time.Time    `json:"createdAt"`
}
