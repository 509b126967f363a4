package types

import "time"

type BookingStatus string

const (
	BookingStatusPotential BookingStatus = "potential" // Candidate, not committed yet
	BookingStatusConfirmed BookingStatus = "confirmed" // Committed, feeds the itinerary and budget
)

// IsValid checks if the status is a valid booking status
func (bs BookingStatus) IsValid() bool {
	return bs == BookingStatusPotential || bs == BookingStatusConfirmed
}

// PayerShare attributes a portion of a cost to one trip member.
type PayerShare struct {
	PayerID string  `json:"payerId"`
	Amount  float64 `json:"amount"`
}

// Flight is a flight booking. Confirming it emits a departure itinerary item
// and, when a return date is present, a return item.
type Flight struct {
	ID           int64         `json:"id"`
	TripID       int64         `json:"tripId"`
	Airline      string        `json:"airline"`
	FlightNumber string        `json:"flightNumber"`
	Departure    string        `json:"departure"`
	Arrival      string        `json:"arrival"`
	Date         string        `json:"date"` // YYYY-MM-DD
	Time         string        `json:"time"` // HH:MM or empty
	ReturnDate   string        `json:"returnDate,omitempty"`
	ReturnTime   string        `json:"returnTime,omitempty"`
	Status       BookingStatus `json:"status"`
	Price        string        `json:"price,omitempty"` // free text, e.g. "£420"
	Cost         *float64      `json:"cost,omitempty"`
	PaidBy       []PayerShare  `json:"paidBy,omitempty"`
	CreatedBy    string        `json:"createdByUid"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Hotel is an accommodation booking. Confirming it emits a check-in item at
// 15:00 on the check-in date and a check-out item at 11:00 on the check-out
// date.
type Hotel struct {
	ID        int64         `json:"id"`
	TripID    int64         `json:"tripId"`
	Name      string        `json:"name"`
	Address   string        `json:"address,omitempty"`
	CheckIn   string        `json:"checkIn"`  // YYYY-MM-DD
	CheckOut  string        `json:"checkOut"` // YYYY-MM-DD
	Link      string        `json:"link,omitempty"`
	Status    BookingStatus `json:"status"`
	Price     string        `json:"price,omitempty"`
	Cost      *float64      `json:"cost,omitempty"`
	PaidBy    []PayerShare  `json:"paidBy,omitempty"`
	CreatedBy string        `json:"createdByUid"`
	CreatedAt time.Time     `json:"createdAt"`
}

// Transport is a ground-transport booking (train, bus, ferry, car hire).
type Transport struct {
	ID        int64         `json:"id"`
	TripID    int64         `json:"tripId"`
	Mode      string        `json:"mode"` // e.g. "train", "bus"
	From      string        `json:"from"`
	To        string        `json:"to"`
	Date      string        `json:"date"`
	Time      string        `json:"time"`
	Status    BookingStatus `json:"status"`
	Price     string        `json:"price,omitempty"`
	Cost      *float64      `json:"cost,omitempty"`
	PaidBy    []PayerShare  `json:"paidBy,omitempty"`
	CreatedBy string        `json:"createdByUid"`
	CreatedAt time.Time     `json:"createdAt"`
}

// ConfirmRequest carries the cost entry that accompanies a confirmation.
// Exactly one of NoCost, Cost, or a split (Payers + SplitMode) applies.
type ConfirmRequest struct {
	NoCost    bool               `json:"noCost"`
	Cost      *float64           `json:"cost,omitempty"`
	Payers    []string           `json:"payers,omitempty"`
	SplitMode string             `json:"splitMode,omitempty"` // "equal" or "custom"
	Custom    map[string]float64 `json:"custom,omitempty"`    // per-payer amounts for custom splits
	// Place confirmations schedule exactly one itinerary item at a
	// user-chosen date and time.
	Date string `json:"date,omitempty"`
	Time string `json:"time,omitempty"`
}
