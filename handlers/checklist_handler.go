package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/types"
)

// ChecklistHandler serves the packing list, shopping list, and manual
// expense endpoints.
type ChecklistHandler struct {
	tripModel      *models.TripModel
	checklistModel *models.ChecklistModel
}

func NewChecklistHandler(tripModel *models.TripModel, checklistModel *models.ChecklistModel) *ChecklistHandler {
	return &ChecklistHandler{
		tripModel:      tripModel,
		checklistModel: checklistModel,
	}
}

func (h *ChecklistHandler) scope(c *gin.Context) (tripID int64, userID string, ok bool) {
	userID, ok = requireUser(c)
	if !ok {
		return 0, "", false
	}
	tripID, ok = tripIDParam(c)
	if !ok {
		return 0, "", false
	}
	if !authorizeTrip(c, h.tripModel, tripID, userID) {
		return 0, "", false
	}
	return tripID, userID, true
}

// --- Packing ---

func (h *ChecklistHandler) CreatePackingItemHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var item types.PackingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	item.TripID = tripID
	item.CreatedBy = userID

	if err := h.checklistModel.CreatePackingItem(c.Request.Context(), &item, userID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ChecklistHandler) ListPackingItemsHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	items, err := h.checklistModel.ListPackingItems(c.Request.Context(), tripID, listModeQuery(c), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type packedRequest struct {
	Packed bool `json:"packed"`
}

func (h *ChecklistHandler) SetPackedHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	itemID, ok := int64Param(c, "itemId")
	if !ok {
		return
	}

	var req packedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	item, err := h.checklistModel.SetPacked(c.Request.Context(), tripID, itemID, listModeQuery(c), userID, req.Packed)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ChecklistHandler) DeletePackingItemHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	itemID, ok := int64Param(c, "itemId")
	if !ok {
		return
	}

	h.checklistModel.DeletePackingItem(c.Request.Context(), tripID, itemID, listModeQuery(c), userID)
	c.Status(http.StatusNoContent)
}

// --- Shopping ---

func (h *ChecklistHandler) CreateShoppingItemHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var item types.ShoppingItem
	if err := c.ShouldBindJSON(&item); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	item.TripID = tripID
	item.OwnerID = userID
	item.CreatedBy = userID

	if err := h.checklistModel.CreateShoppingItem(c.Request.Context(), &item); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ChecklistHandler) ListShoppingItemsHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	items, err := h.checklistModel.ListShoppingItems(c.Request.Context(), tripID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type boughtRequest struct {
	Bought bool     `json:"bought"`
	Cost   *float64 `json:"cost,omitempty"`
}

func (h *ChecklistHandler) SetBoughtHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	itemID, ok := int64Param(c, "itemId")
	if !ok {
		return
	}

	var req boughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	item, err := h.checklistModel.SetBought(c.Request.Context(), tripID, userID, itemID, req.Bought, req.Cost)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ChecklistHandler) DeleteShoppingItemHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	itemID, ok := int64Param(c, "itemId")
	if !ok {
		return
	}

	h.checklistModel.DeleteShoppingItem(c.Request.Context(), tripID, userID, itemID)
	c.Status(http.StatusNoContent)
}

// --- Manual expenses ---

func (h *ChecklistHandler) CreateExpenseHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var expense types.Expense
	if err := c.ShouldBindJSON(&expense); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	expense.TripID = tripID
	expense.CreatedBy = userID

	if err := h.checklistModel.CreateExpense(c.Request.Context(), &expense, userID); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ChecklistHandler) ListExpensesHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	expenses, err := h.checklistModel.ListExpenses(c.Request.Context(), tripID, listModeQuery(c), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ChecklistHandler) DeleteExpenseHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	expenseID, ok := int64Param(c, "expenseId")
	if !ok {
		return
	}

	h.checklistModel.DeleteExpense(c.Request.Context(), tripID, expenseID, listModeQuery(c), userID)
	c.Status(http.StatusNoContent)
}
