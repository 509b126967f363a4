package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplogue/triplogue-backend/db"
	apperrors "github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/store/memory"
	"github.com/triplogue/triplogue-backend/types"
)

type budgetFixture struct {
	budget    *BudgetModel
	booking   *BookingModel
	checklist *ChecklistModel
	trip      *types.Trip
}

func newBudgetFixture(t *testing.T) *budgetFixture {
	t.Helper()

	docStore := memory.NewDocumentStore()
	tripDB := db.NewTripDB(docStore)
	itineraryDB := db.NewItineraryDB(docStore)
	flightDB := db.NewFlightDB(docStore)
	hotelDB := db.NewHotelDB(docStore)
	transportDB := db.NewTransportDB(docStore)
	placeDB := db.NewPlaceDB(docStore)
	packingDB := db.NewPackingDB(docStore)
	shoppingDB := db.NewShoppingDB(docStore)
	expenseDB := db.NewExpenseDB(docStore)
	limitsDB := db.NewBudgetLimitsDB(docStore)

	itineraryModel := NewItineraryModel(tripDB, itineraryDB)

	trip := &types.Trip{
		Destination: "Tokyo",
		StartDate:   "2024-04-01",
		EndDate:     "2024-04-14",
		CreatedBy:   "alice",
	}
	require.NoError(t, tripDB.CreateTrip(context.Background(), trip))

	return &budgetFixture{
		budget:    NewBudgetModel(flightDB, hotelDB, transportDB, placeDB, shoppingDB, expenseDB, limitsDB),
		booking:   NewBookingModel(flightDB, hotelDB, transportDB, placeDB, itineraryModel),
		checklist: NewChecklistModel(packingDB, shoppingDB, expenseDB),
		trip:      trip,
	}
}

func (f *budgetFixture) confirmHotel(t *testing.T, name string, req *types.ConfirmRequest) {
	t.Helper()
	ctx := context.Background()
	hotel := &types.Hotel{
		TripID:    f.trip.ID,
		Name:      name,
		CheckIn:   "2024-04-01",
		CheckOut:  "2024-04-05",
		CreatedBy: "alice",
	}
	require.NoError(t, f.booking.CreateHotel(ctx, hotel))
	_, err := f.booking.ConfirmHotel(ctx, f.trip.ID, hotel.ID, req, "alice")
	require.NoError(t, err)
}

func TestGetBudgetRejectsUnknownMode(t *testing.T) {
	f := newBudgetFixture(t)

	_, err := f.budget.GetBudget(context.Background(), f.trip.ID, "everything", "alice")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestGetBudgetInitializesAllCategories(t *testing.T) {
	f := newBudgetFixture(t)

	report, err := f.budget.GetBudget(context.Background(), f.trip.ID, types.BudgetModeShared, "alice")
	require.NoError(t, err)

	assert.Len(t, report.Categories, len(types.BudgetCategories))
	for _, cat := range types.BudgetCategories {
		require.Contains(t, report.Categories, cat)
		assert.Zero(t, report.Categories[cat].Total)
		assert.Empty(t, report.Categories[cat].Items)
	}
	assert.Zero(t, report.Total)
	assert.Nil(t, report.Limits)
	assert.Nil(t, report.Remaining)
}

func TestGetBudgetSharedVersusMine(t *testing.T) {
	f := newBudgetFixture(t)
	cost := 200.0
	f.confirmHotel(t, "Park Hyatt", &types.ConfirmRequest{
		Cost:      &cost,
		Payers:    []string{"alice", "bob"},
		SplitMode: "equal",
	})

	shared, err := f.budget.GetBudget(context.Background(), f.trip.ID, types.BudgetModeShared, "alice")
	require.NoError(t, err)
	assert.Equal(t, 200.0, shared.Total)
	assert.Equal(t, 200.0, shared.Categories[types.CategoryAccommodation].Total)

	mine, err := f.budget.GetBudget(context.Background(), f.trip.ID, types.BudgetModeMine, "alice")
	require.NoError(t, err)
	assert.Equal(t, 100.0, mine.Total)

	// A member outside the split owes nothing.
	outsider, err := f.budget.GetBudget(context.Background(), f.trip.ID, types.BudgetModeMine, "carol")
	require.NoError(t, err)
	assert.Zero(t, outsider.Total)
}

func TestGetBudgetIgnoresPotentialBookings(t *testing.T) {
	f := newBudgetFixture(t)
	ctx := context.Background()

	hotel := &types.Hotel{
		TripID:    f.trip.ID,
		Name:      "Maybe Inn",
		CheckIn:   "2024-04-01",
		CheckOut:  "2024-04-02",
		Price:     "¥40,000",
		CreatedBy: "alice",
	}
	require.NoError(t, f.booking.CreateHotel(ctx, hotel))

	report, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeShared, "alice")
	require.NoError(t, err)
	assert.Zero(t, report.Total)
}

func TestGetBudgetVisitedPlacesByKind(t *testing.T) {
	f := newBudgetFixture(t)
	ctx := context.Background()

	eat := &types.Place{TripID: f.trip.ID, Kind: types.PlaceKindEat, Name: "Sushi Dai", CreatedBy: "alice"}
	require.NoError(t, f.booking.CreatePlace(ctx, eat))
	eatCost := 45.0
	_, err := f.booking.SetPlaceVisited(ctx, f.trip.ID, eat.Kind, eat.ID, true, &types.ConfirmRequest{Cost: &eatCost})
	require.NoError(t, err)

	visit := &types.Place{TripID: f.trip.ID, Kind: types.PlaceKindVisit, Name: "teamLab", CreatedBy: "alice"}
	require.NoError(t, f.booking.CreatePlace(ctx, visit))
	visitCost := 30.0
	_, err = f.booking.SetPlaceVisited(ctx, f.trip.ID, visit.Kind, visit.ID, true, &types.ConfirmRequest{Cost: &visitCost})
	require.NoError(t, err)

	// Unvisited places never count, even with a price attached.
	wishlist := &types.Place{TripID: f.trip.ID, Kind: types.PlaceKindVisit, Name: "Skytree", CreatedBy: "alice"}
	require.NoError(t, f.booking.CreatePlace(ctx, wishlist))

	report, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeShared, "alice")
	require.NoError(t, err)
	assert.Equal(t, 45.0, report.Categories[types.CategoryFood].Total)
	assert.Equal(t, 30.0, report.Categories[types.CategoryMiscellaneous].Total)
	assert.Equal(t, 75.0, report.Total)
}

func TestGetBudgetShoppingAttributedToOwner(t *testing.T) {
	f := newBudgetFixture(t)
	ctx := context.Background()

	item := &types.ShoppingItem{
		TripID:    f.trip.ID,
		OwnerID:   "bob",
		Name:      "Kit Kats",
		CreatedBy: "bob",
	}
	require.NoError(t, f.checklist.CreateShoppingItem(ctx, item))
	cost := 12.0
	_, err := f.checklist.SetBought(ctx, f.trip.ID, "bob", item.ID, true, &cost)
	require.NoError(t, err)

	shared, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeShared, "alice")
	require.NoError(t, err)
	assert.Equal(t, 12.0, shared.Categories[types.CategoryShopping].Total)

	// Shopping is never split: the owner carries the whole amount.
	bobs, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeMine, "bob")
	require.NoError(t, err)
	assert.Equal(t, 12.0, bobs.Total)

	alices, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeMine, "alice")
	require.NoError(t, err)
	assert.Zero(t, alices.Total)
}

func TestGetBudgetExpenses(t *testing.T) {
	f := newBudgetFixture(t)
	ctx := context.Background()

	sharedExpense := &types.Expense{
		TripID:   f.trip.ID,
		Label:    "Groceries",
		Amount:   60,
		Category: types.CategoryFood,
		Mode:     types.ListModeShared,
		PaidBy: []types.PayerShare{
			{PayerID: "alice", Amount: 40},
			{PayerID: "bob", Amount: 20},
		},
	}
	require.NoError(t, f.checklist.CreateExpense(ctx, sharedExpense, "alice"))

	personal := &types.Expense{
		TripID:   f.trip.ID,
		Label:    "Onsen",
		Amount:   25,
		Category: types.CategoryMiscellaneous,
		Mode:     types.ListModePersonal,
	}
	require.NoError(t, f.checklist.CreateExpense(ctx, personal, "alice"))

	shared, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeShared, "alice")
	require.NoError(t, err)
	// Personal expenses stay out of the shared view.
	assert.Equal(t, 60.0, shared.Total)

	mine, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeMine, "alice")
	require.NoError(t, err)
	// Alice's share of the split plus her personal expense.
	assert.Equal(t, 65.0, mine.Total)
}

func TestGetBudgetAttachesLimits(t *testing.T) {
	f := newBudgetFixture(t)
	ctx := context.Background()
	cost := 200.0
	f.confirmHotel(t, "Park Hyatt", &types.ConfirmRequest{Cost: &cost})

	require.NoError(t, f.budget.SaveLimits(ctx, &types.BudgetLimits{
		TripID: f.trip.ID,
		Mode:   types.BudgetModeShared,
		Total:  1500,
	}))

	report, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeShared, "alice")
	require.NoError(t, err)
	require.NotNil(t, report.Limits)
	assert.Equal(t, 1500.0, report.Limits.Total)
	require.NotNil(t, report.Remaining)
	assert.Equal(t, 1300.0, *report.Remaining)

	// Limits are stored per mode; mine has none.
	mine, err := f.budget.GetBudget(ctx, f.trip.ID, types.BudgetModeMine, "alice")
	require.NoError(t, err)
	assert.Nil(t, mine.Limits)
	assert.Nil(t, mine.Remaining)
}

func TestSaveLimitsValidation(t *testing.T) {
	f := newBudgetFixture(t)
	ctx := context.Background()

	err := f.budget.SaveLimits(ctx, &types.BudgetLimits{TripID: f.trip.ID, Mode: "weekly"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)

	err = f.budget.SaveLimits(ctx, &types.BudgetLimits{
		TripID:     f.trip.ID,
		Mode:       types.BudgetModeShared,
		Categories: map[types.BudgetCategory]float64{"fun": 100},
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}
