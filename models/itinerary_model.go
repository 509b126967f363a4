package models

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

const dateLayout = "2006-01-02"

// timeSentinel sorts after every valid HH:MM value so items without a time
// end up last within a day.
const timeSentinel = "99:99"

// ItineraryModel materializes the day-by-day schedule of a trip by merging
// the trip's computed date range with whatever per-date records exist in
// storage.
type ItineraryModel struct {
	tripDB      *db.TripDB
	itineraryDB *db.ItineraryDB
}

func NewItineraryModel(tripDB *db.TripDB, itineraryDB *db.ItineraryDB) *ItineraryModel {
	return &ItineraryModel{
		tripDB:      tripDB,
		itineraryDB: itineraryDB,
	}
}

// GetItinerary returns one day per calendar date from the trip's start date
// to its end date inclusive, in order, whether or not a stored record exists
// for the date. Day numbers are always positional (day 1 = start date); a
// stored record never influences them. Calling this twice without
// intervening writes produces identical output.
func (im *ItineraryModel) GetItinerary(ctx context.Context, tripID int64) ([]types.ItineraryDay, error) {
	trip, err := im.tripDB.GetTrip(ctx, tripID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NewTripNotFound(fmt.Sprintf("%d", tripID))
		}
		return nil, errors.NewDatabaseError(err)
	}

	dates, err := dateRange(trip.StartDate, trip.EndDate)
	if err != nil {
		return nil, err
	}

	stored, err := im.itineraryDB.ListDays(ctx, tripID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}

	days := make([]types.ItineraryDay, 0, len(dates))
	for i, date := range dates {
		day := types.ItineraryDay{
			Day:   i + 1,
			Date:  date,
			Items: []types.ItineraryItem{},
		}
		if record, ok := stored[date]; ok && record.Items != nil {
			day.Items = record.Items
		}
		days = append(days, day)
	}
	return days, nil
}

// AddActivity appends a new item to the day resolved from the given 1-based
// day number, re-sorts the day by time of day, and writes the whole record
// back. The day record is created on first use.
func (im *ItineraryModel) AddActivity(ctx context.Context, tripID int64, create *types.ItineraryItemCreate, userID string) (*types.ItineraryItem, error) {
	if err := validateItemCreate(create); err != nil {
		return nil, err
	}

	days, err := im.GetItinerary(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if create.Day < 1 || create.Day > len(days) {
		return nil, errors.ValidationFailed(
			"Invalid day number",
			fmt.Sprintf("day %d is outside the trip's %d-day range", create.Day, len(days)),
		)
	}
	date := days[create.Day-1].Date

	item := types.ItineraryItem{
		ID:        ids.NextMillis(),
		Time:      create.Time,
		Activity:  create.Activity,
		Location:  create.Location,
		Notes:     create.Notes,
		Category:  create.Category,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}

	if err := im.AddItemAtDate(ctx, tripID, date, item); err != nil {
		return nil, err
	}
	return &item, nil
}

// AddItemAtDate loads (or initializes) the stored record for a date, appends
// the item, re-sorts, and writes back. Booking confirmations emit their
// itinerary items through this path.
func (im *ItineraryModel) AddItemAtDate(ctx context.Context, tripID int64, date string, item types.ItineraryItem) error {
	record, err := im.itineraryDB.GetDay(ctx, tripID, date)
	if err != nil {
		if !stderrors.Is(err, store.ErrNotFound) {
			return errors.NewDatabaseError(err)
		}
		record = &types.ItineraryDayRecord{Date: date}
	}

	record.Items = append(record.Items, item)
	sortItems(record.Items)

	if err := im.itineraryDB.SaveDay(ctx, tripID, record); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

// DeleteActivity removes the item with the given id from a date's record and
// writes the record back, even when the resulting item list is empty.
func (im *ItineraryModel) DeleteActivity(ctx context.Context, tripID int64, date string, itemID int64) error {
	record, err := im.itineraryDB.GetDay(ctx, tripID, date)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return errors.NotFound("Itinerary day", date)
		}
		return errors.NewDatabaseError(err)
	}

	kept := record.Items[:0]
	found := false
	for _, item := range record.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return errors.NotFound("Itinerary item", itemID)
	}
	record.Items = kept

	if err := im.itineraryDB.SaveDay(ctx, tripID, record); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

// dateRange expands an inclusive start..end date pair into one entry per
// calendar day. time.AddDate handles month and year rollover.
func dateRange(start, end string) ([]string, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, errors.ValidationFailed("Invalid trip start date", start)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, errors.ValidationFailed("Invalid trip end date", end)
	}
	if endDate.Before(startDate) {
		return nil, errors.ValidationFailed("Invalid trip date range", "end date precedes start date")
	}

	var dates []string
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates, nil
}

// sortItems orders a day's items ascending by time of day, items without a
// time last. The sort is stable so same-time items keep insertion order.
func sortItems(items []types.ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return timeSortKey(items[i].Time) < timeSortKey(items[j].Time)
	})
}

func timeSortKey(t string) string {
	if t == "" {
		return timeSentinel
	}
	return t
}

func validateItemCreate(create *types.ItineraryItemCreate) error {
	if create.Activity == "" {
		return errors.ValidationFailed("Activity label is required", "")
	}
	if create.Time != "" {
		if _, err := time.Parse("15:04", create.Time); err != nil {
			return errors.ValidationFailed("Invalid time of day", create.Time)
		}
	}
	if create.Category == "" {
		create.Category = types.ItineraryCategoryActivity
	}
	if !create.Category.IsValid() {
		return errors.ValidationFailed("Invalid itinerary category", string(create.Category))
	}
	return nil
}
