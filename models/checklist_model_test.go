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

func newChecklistFixture(t *testing.T) *ChecklistModel {
	t.Helper()
	docStore := memory.NewDocumentStore()
	return NewChecklistModel(
		db.NewPackingDB(docStore),
		db.NewShoppingDB(docStore),
		db.NewExpenseDB(docStore),
	)
}

func TestPackingSharedAndPersonalNamespaces(t *testing.T) {
	model := newChecklistFixture(t)
	ctx := context.Background()
	tripID := int64(1)

	shared := &types.PackingItem{TripID: tripID, Name: "Tent", Mode: types.ListModeShared}
	require.NoError(t, model.CreatePackingItem(ctx, shared, "alice"))

	personal := &types.PackingItem{TripID: tripID, Name: "Toothbrush", Mode: types.ListModePersonal}
	require.NoError(t, model.CreatePackingItem(ctx, personal, "alice"))

	sharedItems, err := model.ListPackingItems(ctx, tripID, types.ListModeShared, "alice")
	require.NoError(t, err)
	require.Len(t, sharedItems, 1)
	assert.Equal(t, "Tent", sharedItems[0].Name)

	aliceItems, err := model.ListPackingItems(ctx, tripID, types.ListModePersonal, "alice")
	require.NoError(t, err)
	require.Len(t, aliceItems, 1)
	assert.Equal(t, "Toothbrush", aliceItems[0].Name)

	// Another member sees the shared list but not Alice's personal one.
	bobItems, err := model.ListPackingItems(ctx, tripID, types.ListModePersonal, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobItems)
}

func TestSetPacked(t *testing.T) {
	model := newChecklistFixture(t)
	ctx := context.Background()

	item := &types.PackingItem{TripID: 1, Name: "Tent", Mode: types.ListModeShared}
	require.NoError(t, model.CreatePackingItem(ctx, item, "alice"))

	packed, err := model.SetPacked(ctx, 1, item.ID, types.ListModeShared, "alice", true)
	require.NoError(t, err)
	assert.True(t, packed.Packed)

	unpacked, err := model.SetPacked(ctx, 1, item.ID, types.ListModeShared, "alice", false)
	require.NoError(t, err)
	assert.False(t, unpacked.Packed)
}

func TestSetPackedMissingItem(t *testing.T) {
	model := newChecklistFixture(t)

	_, err := model.SetPacked(context.Background(), 1, 42, types.ListModeShared, "alice", true)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
}

func TestShoppingListsArePerUser(t *testing.T) {
	model := newChecklistFixture(t)
	ctx := context.Background()

	item := &types.ShoppingItem{TripID: 1, OwnerID: "alice", Name: "Postcards"}
	require.NoError(t, model.CreateShoppingItem(ctx, item))

	aliceItems, err := model.ListShoppingItems(ctx, 1, "alice")
	require.NoError(t, err)
	assert.Len(t, aliceItems, 1)

	bobItems, err := model.ListShoppingItems(ctx, 1, "bob")
	require.NoError(t, err)
	assert.Empty(t, bobItems)
}

func TestSetBoughtRecordsAndClearsCost(t *testing.T) {
	model := newChecklistFixture(t)
	ctx := context.Background()

	item := &types.ShoppingItem{TripID: 1, OwnerID: "alice", Name: "Postcards"}
	require.NoError(t, model.CreateShoppingItem(ctx, item))

	cost := 4.5
	bought, err := model.SetBought(ctx, 1, "alice", item.ID, true, &cost)
	require.NoError(t, err)
	assert.True(t, bought.Bought)
	require.NotNil(t, bought.Cost)
	assert.Equal(t, 4.5, *bought.Cost)

	unbought, err := model.SetBought(ctx, 1, "alice", item.ID, false, nil)
	require.NoError(t, err)
	assert.False(t, unbought.Bought)
	assert.Nil(t, unbought.Cost)
}

func TestCreateExpenseValidation(t *testing.T) {
	model := newChecklistFixture(t)
	ctx := context.Background()

	cases := []*types.Expense{
		{TripID: 1, Amount: 10},
		{TripID: 1, Label: "Taxi", Amount: -5},
		{TripID: 1, Label: "Taxi", Amount: 10, Mode: "weekly"},
	}
	for _, e := range cases {
		err := model.CreateExpense(ctx, e, "alice")
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.ValidationError, appErr.Type)
	}
}

func TestExpenseUnknownCategoryMapsToOther(t *testing.T) {
	model := newChecklistFixture(t)
	ctx := context.Background()

	expense := &types.Expense{
		TripID:   1,
		Label:    "Mystery",
		Amount:   10,
		Category: "entertainment",
		Mode:     types.ListModeShared,
	}
	require.NoError(t, model.CreateExpense(ctx, expense, "alice"))

	expenses, err := model.ListExpenses(ctx, 1, types.ListModeShared, "alice")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, types.CategoryOther, expenses[0].Category)
}

func TestPersonalExpenseDropsPayerList(t *testing.T) {
	model := newChecklistFixture(t)
	ctx := context.Background()

	expense := &types.Expense{
		TripID: 1,
		Label:  "Snacks",
		Amount: 8,
		Mode:   types.ListModePersonal,
		PaidBy: []types.PayerShare{{PayerID: "bob", Amount: 8}},
	}
	require.NoError(t, model.CreateExpense(ctx, expense, "alice"))

	expenses, err := model.ListExpenses(ctx, 1, types.ListModePersonal, "alice")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Empty(t, expenses[0].PaidBy)
}
