package types

import "time"

type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"  // Trip has not started yet
	TripStatusOngoing   TripStatus = "ongoing"   // Trip is currently in progress
	TripStatusCompleted TripStatus = "completed" // Trip has finished
)

// Trip represents one journey shared between its members.
type Trip struct {
	ID          int64      `json:"id"`
	Destination string     `json:"destination"`
	Country     string     `json:"country"`
	Year        int        `json:"year"`
	StartDate   string     `json:"startDate"` // YYYY-MM-DD, inclusive
	EndDate     string     `json:"endDate"`   // YYYY-MM-DD, inclusive
	Status      TripStatus `json:"status"`
	OwnerID     string     `json:"ownerId"`
	MemberIDs   []string   `json:"memberIds"`
	CreatedBy   string     `json:"createdByUid"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// IsMember reports whether the given user belongs to the trip. The owner is
// always a member.
func (t *Trip) IsMember(userID string) bool {
	if userID == t.OwnerID {
		return true
	}
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// String provides a string representation of the status
func (ts TripStatus) String() string {
	return string(ts)
}

// IsValid checks if the status is a valid trip status
func (ts TripStatus) IsValid() bool {
	switch ts {
	case TripStatusUpcoming, TripStatusOngoing, TripStatusCompleted:
		return true
	default:
		return false
	}
}

// TripUpdate carries the mutable trip fields; zero values are left unchanged.
type TripUpdate struct {
	Destination string     `json:"destination"`
	Country     string     `json:"country"`
	Year        int        `json:"year"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Status      TripStatus `json:"status"`
}
