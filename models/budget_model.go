package models

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/pkg/costsplit"
	"github.com/triplogue/triplogue-backend/store"
	"github.com/triplogue/triplogue-backend/types"
)

// BudgetModel rolls spend up across every entity collection of a trip.
// Shared mode totals the full trip cost; mine mode totals only the current
// user's attributed share. Limits are display-only; overspend is reported,
// never blocked.
type BudgetModel struct {
	flightDB    *db.FlightDB
	hotelDB     *db.HotelDB
	transportDB *db.TransportDB
	placeDB     *db.PlaceDB
	shoppingDB  *db.ShoppingDB
	expenseDB   *db.ExpenseDB
	limitsDB    *db.BudgetLimitsDB
}

func NewBudgetModel(flightDB *db.FlightDB, hotelDB *db.HotelDB, transportDB *db.TransportDB, placeDB *db.PlaceDB, shoppingDB *db.ShoppingDB, expenseDB *db.ExpenseDB, limitsDB *db.BudgetLimitsDB) *BudgetModel {
	return &BudgetModel{
		flightDB:    flightDB,
		hotelDB:     hotelDB,
		transportDB: transportDB,
		placeDB:     placeDB,
		shoppingDB:  shoppingDB,
		expenseDB:   expenseDB,
		limitsDB:    limitsDB,
	}
}

// GetBudget scans hotels, flights, transports, places, shopping items, and
// manual expenses for the trip and aggregates eligible spend per category.
// Zero-amount entries are dropped from the line items.
func (bm *BudgetModel) GetBudget(ctx context.Context, tripID int64, mode types.BudgetMode, userID string) (*types.BudgetReport, error) {
	if !mode.IsValid() {
		return nil, errors.ValidationFailed("Invalid budget mode", string(mode))
	}

	report := &types.BudgetReport{
		Mode:       mode,
		Categories: make(map[types.BudgetCategory]*types.CategorySummary, len(types.BudgetCategories)),
	}
	for _, cat := range types.BudgetCategories {
		report.Categories[cat] = &types.CategorySummary{Items: []types.BudgetLine{}}
	}

	if err := bm.collectHotels(ctx, tripID, mode, userID, report); err != nil {
		return nil, err
	}
	if err := bm.collectFlights(ctx, tripID, mode, userID, report); err != nil {
		return nil, err
	}
	if err := bm.collectTransports(ctx, tripID, mode, userID, report); err != nil {
		return nil, err
	}
	if err := bm.collectPlaces(ctx, tripID, mode, userID, report); err != nil {
		return nil, err
	}
	if err := bm.collectShopping(ctx, tripID, mode, userID, report); err != nil {
		return nil, err
	}
	if err := bm.collectExpenses(ctx, tripID, mode, userID, report); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, summary := range report.Categories {
		total = total.Add(decimal.NewFromFloat(summary.Total))
	}
	report.Total, _ = total.Float64()

	bm.attachLimits(ctx, tripID, mode, report)
	return report, nil
}

// SaveLimits stores a per-mode spending target for the trip.
func (bm *BudgetModel) SaveLimits(ctx context.Context, limits *types.BudgetLimits) error {
	if !limits.Mode.IsValid() {
		return errors.ValidationFailed("Invalid budget mode", string(limits.Mode))
	}
	for cat := range limits.Categories {
		if !cat.IsValid() {
			return errors.ValidationFailed("Invalid budget category", string(cat))
		}
	}
	if err := bm.limitsDB.SaveLimits(ctx, limits); err != nil {
		return errors.NewDatabaseError(err)
	}
	return nil
}

func (bm *BudgetModel) collectHotels(ctx context.Context, tripID int64, mode types.BudgetMode, userID string, report *types.BudgetReport) error {
	hotels, err := bm.hotelDB.ListHotels(ctx, tripID)
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	for _, h := range hotels {
		if h.Status != types.BookingStatusConfirmed {
			continue
		}
		amount := costsplit.Resolve(h.Cost, h.PaidBy, h.Price, mode, userID)
		addLine(report, types.BudgetLine{
			Label:    h.Name,
			Amount:   amount,
			Category: types.CategoryAccommodation,
			Source:   "hotel",
		})
	}
	return nil
}

func (bm *BudgetModel) collectFlights(ctx context.Context, tripID int64, mode types.BudgetMode, userID string, report *types.BudgetReport) error {
	flights, err := bm.flightDB.ListFlights(ctx, tripID)
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	for i := range flights {
		f := &flights[i]
		if f.Status != types.BookingStatusConfirmed {
			continue
		}
		amount := costsplit.Resolve(f.Cost, f.PaidBy, f.Price, mode, userID)
		addLine(report, types.BudgetLine{
			Label:    flightLabel(f),
			Amount:   amount,
			Category: types.CategoryTravel,
			Source:   "flight",
		})
	}
	return nil
}

func (bm *BudgetModel) collectTransports(ctx context.Context, tripID int64, mode types.BudgetMode, userID string, report *types.BudgetReport) error {
	transports, err := bm.transportDB.ListTransports(ctx, tripID)
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	for i := range transports {
		t := &transports[i]
		if t.Status != types.BookingStatusConfirmed {
			continue
		}
		amount := costsplit.Resolve(t.Cost, t.PaidBy, t.Price, mode, userID)
		addLine(report, types.BudgetLine{
			Label:    fmt.Sprintf("%s %s → %s", transportLabel(t), t.From, t.To),
			Amount:   amount,
			Category: types.CategoryTravel,
			Source:   "transport",
		})
	}
	return nil
}

func (bm *BudgetModel) collectPlaces(ctx context.Context, tripID int64, mode types.BudgetMode, userID string, report *types.BudgetReport) error {
	places, err := bm.placeDB.ListPlaces(ctx, tripID, "")
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	for _, p := range places {
		if !p.Visited || (p.Cost == nil && len(p.PaidBy) == 0) {
			continue
		}
		category := types.CategoryMiscellaneous
		if p.Kind == types.PlaceKindEat {
			category = types.CategoryFood
		}
		amount := costsplit.Resolve(p.Cost, p.PaidBy, "", mode, userID)
		addLine(report, types.BudgetLine{
			Label:    p.Name,
			Amount:   amount,
			Category: category,
			Source:   "place",
		})
	}
	return nil
}

func (bm *BudgetModel) collectShopping(ctx context.Context, tripID int64, mode types.BudgetMode, userID string, report *types.BudgetReport) error {
	items, err := bm.shoppingDB.ListAllShoppingItems(ctx, tripID)
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	for _, item := range items {
		if !item.Bought || (item.Cost == nil && item.Price == "") {
			continue
		}

		// Shopping items are single-user by namespace: the full amount is
		// attributed to the owning user, never split.
		var amount float64
		if item.Cost != nil {
			amount = *item.Cost
		} else {
			amount = costsplit.ParsePrice(item.Price)
		}
		if mode == types.BudgetModeMine && item.OwnerID != userID {
			amount = 0
		}

		addLine(report, types.BudgetLine{
			Label:    item.Name,
			Amount:   amount,
			Category: types.CategoryShopping,
			Source:   "shopping",
		})
	}
	return nil
}

func (bm *BudgetModel) collectExpenses(ctx context.Context, tripID int64, mode types.BudgetMode, userID string, report *types.BudgetReport) error {
	shared, err := bm.expenseDB.ListExpenses(ctx, tripID, types.ListModeShared, userID)
	if err != nil {
		return errors.NewDatabaseError(err)
	}
	for _, e := range shared {
		amount := e.Amount
		if mode == types.BudgetModeMine {
			amount = costsplit.UserShare(e.PaidBy, userID)
		}
		addLine(report, types.BudgetLine{
			Label:    e.Label,
			Amount:   amount,
			Category: e.Category,
			Source:   "expense",
		})
	}

	// Personal expenses only ever count toward their owner's view.
	if mode == types.BudgetModeMine {
		personal, err := bm.expenseDB.ListExpenses(ctx, tripID, types.ListModePersonal, userID)
		if err != nil {
			return errors.NewDatabaseError(err)
		}
		for _, e := range personal {
			addLine(report, types.BudgetLine{
				Label:    e.Label,
				Amount:   e.Amount,
				Category: e.Category,
				Source:   "expense",
			})
		}
	}
	return nil
}

// addLine folds a line into its category, dropping zero amounts.
func addLine(report *types.BudgetReport, line types.BudgetLine) {
	if line.Amount == 0 {
		return
	}
	summary, ok := report.Categories[line.Category]
	if !ok {
		summary = &types.CategorySummary{Items: []types.BudgetLine{}}
		report.Categories[line.Category] = summary
	}
	summary.Items = append(summary.Items, line)
	total := decimal.NewFromFloat(summary.Total).Add(decimal.NewFromFloat(line.Amount))
	summary.Total, _ = total.Float64()
}

// attachLimits loads the mode's stored limits, degrading to a report
// without limits when none exist or the load fails.
func (bm *BudgetModel) attachLimits(ctx context.Context, tripID int64, mode types.BudgetMode, report *types.BudgetReport) {
	limits, err := bm.limitsDB.GetLimits(ctx, tripID, mode)
	if err != nil {
		if !stderrors.Is(err, store.ErrNotFound) {
			logger.GetLogger().Warnw("Failed to load budget limits", "trip", tripID, "mode", mode, "error", err)
		}
		return
	}

	report.Limits = limits
	remaining, _ := decimal.NewFromFloat(limits.Total).Sub(decimal.NewFromFloat(report.Total)).Float64()
	report.Remaining = &remaining
}
