package models

import (
	"context"
	stderrors "errors"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// ChecklistModel owns packing lists, shopping lists, and manual expenses.
type ChecklistModel struct {
	packingDB  *db.PackingDB
	shoppingDB *db.ShoppingDB
	expenseDB  *db.ExpenseDB
}

func NewChecklistModel(packingDB *db.PackingDB, shoppingDB *db.ShoppingDB, expenseDB *db.ExpenseDB) *ChecklistModel {
	return &ChecklistModel{
		packingDB:  packingDB,
		shoppingDB: shoppingDB,
		expenseDB:  expenseDB,
	}
}

// --- Packing ---

func (cm *ChecklistModel) CreatePackingItem(ctx context.Context, item *types.PackingItem, userID string) error {
	if item.Name == "" {
		return errors.ValidationFailed("Item name is required", "")
	}
	if item.Mode != "" && !item.Mode.IsValid() {
		return errors.ValidationFailed("Invalid list mode", string(item.Mode))
	}
	if err := cm.packingDB.CreatePackingItem(ctx, item, userID); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (cm *ChecklistModel) ListPackingItems(ctx context.Context, tripID int64, mode types.ListMode, userID string) ([]types.PackingItem, error) {
	if !mode.IsValid() {
		return nil, errors.ValidationFailed("Invalid list mode", string(mode))
	}
	items, err := cm.packingDB.ListPackingItems(ctx, tripID, mode, userID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return items, nil
}

// SetPacked toggles the packed flag on a packing item.
func (cm *ChecklistModel) SetPacked(ctx context.Context, tripID, itemID int64, mode types.ListMode, userID string, packed bool) (*types.PackingItem, error) {
	item, err := cm.packingDB.GetPackingItem(ctx, tripID, itemID, mode, userID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("Packing item", itemID)
		}
		return nil, errors.NewDatabaseError(err)
	}

	item.Packed = packed
	if err := cm.packingDB.SavePackingItem(ctx, item, userID); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return item, nil
}

func (cm *ChecklistModel) DeletePackingItem(ctx context.Context, tripID, itemID int64, mode types.ListMode, userID string) {
	cm.packingDB.DeletePackingItem(ctx, tripID, itemID, mode, userID)
}

// --- Shopping ---

func (cm *ChecklistModel) CreateShoppingItem(ctx context.Context, item *types.ShoppingItem) error {
	if item.Name == "" {
		return errors.ValidationFailed("Item name is required", "")
	}
	if err := cm.shoppingDB.CreateShoppingItem(ctx, item); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (cm *ChecklistModel) ListShoppingItems(ctx context.Context, tripID int64, userID string) ([]types.ShoppingItem, error) {
	items, err := cm.shoppingDB.ListShoppingItems(ctx, tripID, userID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return items, nil
}

// SetBought toggles the bought flag. Marking bought routes through a cost
// entry; unmarking clears the recorded cost.
func (cm *ChecklistModel) SetBought(ctx context.Context, tripID int64, userID string, itemID int64, bought bool, cost *float64) (*types.ShoppingItem, error) {
	item, err := cm.shoppingDB.GetShoppingItem(ctx, tripID, userID, itemID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NotFound("Shopping item", itemID)
		}
		return nil, errors.NewDatabaseError(err)
	}

	item.Bought = bought
	if bought {
		item.Cost = cost
	} else {
		item.Cost = nil
	}

	if err := cm.shoppingDB.SaveShoppingItem(ctx, item); err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return item, nil
}

func (cm *ChecklistModel) DeleteShoppingItem(ctx context.Context, tripID int64, userID string, itemID int64) {
	cm.shoppingDB.DeleteShoppingItem(ctx, tripID, userID, itemID)
}

// --- Manual expenses ---

func (cm *ChecklistModel) CreateExpense(ctx context.Context, expense *types.Expense, userID string) error {
	if expense.Label == "" {
		return errors.ValidationFailed("Expense label is required", "")
	}
	if expense.Amount < 0 {
		return errors.ValidationFailed("Expense amount cannot be negative", "")
	}
	if expense.Mode != "" && !expense.Mode.IsValid() {
		return errors.ValidationFailed("Invalid list mode", string(expense.Mode))
	}
	if err := cm.expenseDB.CreateExpense(ctx, expense, userID); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (cm *ChecklistModel) ListExpenses(ctx context.Context, tripID int64, mode types.ListMode, userID string) ([]types.Expense, error) {
	if !mode.IsValid() {
		return nil, errors.ValidationFailed("Invalid list mode", string(mode))
	}
	expenses, err := cm.expenseDB.ListExpenses(ctx, tripID, mode, userID)
	if err != nil {
		return nil, errors.NewDatabaseError(err)
	}
	return expenses, nil
}

func (cm *ChecklistModel) DeleteExpense(ctx context.Context, tripID, expenseID int64, mode types.ListMode, userID string) {
	cm.expenseDB.DeleteExpense(ctx, tripID, expenseID, mode, userID)
}
