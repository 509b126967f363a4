package db

import (
	"context"
	"sort"
	"time"

	"github.com/triplogue/triplogue-backend/internal/ids"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// ExpenseDB persists manual expenses under the shared or per-user namespace
// depending on the expense's mode.
type ExpenseDB struct {
	store store.DocumentStore
}

func NewExpenseDB(s store.DocumentStore) *ExpenseDB {
	return &ExpenseDB{store: s}
}

func (edb *ExpenseDB) expenseKey(expense *types.Expense, userID string) string {
	if expense.Mode == types.ListModePersonal {
		return store.ExpenseUserKey(expense.TripID, userID, expense.ID)
	}
	return store.ExpenseSharedKey(expense.TripID, expense.ID)
}

func (edb *ExpenseDB) CreateExpense(ctx context.Context, expense *types.Expense, userID string) error {
	expense.ID = ids.NextMillis()
	expense.CreatedAt = time.Now()
	if expense.Mode == "" {
		expense.Mode = types.ListModeShared
	}
	if !expense.Category.IsValid() {
		expense.Category = types.CategoryOther
	}
	// Splits only apply to shared expenses; a personal spend is wholly the
	// user's own.
	if expense.Mode == types.ListModePersonal {
		expense.PaidBy = nil
	}
	return setDoc(ctx, edb.store, edb.expenseKey(expense, userID), expense)
}

// ListExpenses returns one mode's expenses, newest first. Personal mode
// reads only the given user's namespace.
func (edb *ExpenseDB) ListExpenses(ctx context.Context, tripID int64, mode types.ListMode, userID string) ([]types.Expense, error) {
	prefix := store.ExpenseSharedPrefix(tripID)
	if mode == types.ListModePersonal {
		prefix = store.ExpenseUserPrefix(tripID, userID)
	}

	expenses, err := listDocs[types.Expense](ctx, edb.store, prefix)
	if err != nil {
		return nil, err
	}
	sort.Slice(expenses, func(i, j int) bool { return expenses[i].ID > expenses[j].ID })
	return expenses, nil
}

func (edb *ExpenseDB) DeleteExpense(ctx context.Context, tripID, expenseID int64, mode types.ListMode, userID string) {
	expense := &types.Expense{TripID: tripID, ID: expenseID, Mode: mode}
	deleteDoc(ctx, edb.store, edb.expenseKey(expense, userID))
}

// BudgetLimitsDB persists the per-trip, per-mode spending targets.
type BudgetLimitsDB struct {
	store store.DocumentStore
}

func NewBudgetLimitsDB(s store.DocumentStore) *BudgetLimitsDB {
	return &BudgetLimitsDB{store: s}
}

// GetLimits returns store.ErrNotFound when no limits were saved for the
// mode yet.
func (bdb *BudgetLimitsDB) GetLimits(ctx context.Context, tripID int64, mode types.BudgetMode) (*types.BudgetLimits, error) {
	return getDoc[types.BudgetLimits](ctx, bdb.store, store.BudgetLimitsKey(tripID, mode))
}

func (bdb *BudgetLimitsDB) SaveLimits(ctx context.Context, limits *types.BudgetLimits) error {
	return setDoc(ctx, bdb.store, store.BudgetLimitsKey(limits.TripID, limits.Mode), limits)
}
