package types

import "time"

// ListMode selects between the trip-wide and the per-user namespace for
// packing lists and manual expenses.
type ListMode string

const (
	ListModeShared   ListMode = "shared"
	ListModePersonal ListMode = "personal"
)

// IsValid checks if the mode is a valid list mode.
func (m ListMode) IsValid() bool {
	return m == ListModeShared || m == ListModePersonal
}

// PackingItem is one entry on a packing list, either shared by the whole
// trip or private to a single member.
type PackingItem struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"tripId"`
	Name      string    `json:"name"`
	Packed    bool      `json:"packed"`
	Mode      ListMode  `json:"mode"`
	CreatedBy string    `json:"createdByUid"`
	CreatedAt time.Time `json:"createdAt"`
}

// ShoppingItem is a purchase a member plans or made. Shopping lists are
// always per-user; costs are attributed entirely to the owning user.
type ShoppingItem struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"tripId"`
	OwnerID   string    `json:"ownerId"`
	Name      string    `json:"name"`
	Price     string    `json:"price,omitempty"` // free text
	Bought    bool      `json:"bought"`
	Cost      *float64  `json:"cost,omitempty"`
	CreatedBy string    `json:"createdByUid"`
	CreatedAt time.Time `json:"createdAt"`
}
