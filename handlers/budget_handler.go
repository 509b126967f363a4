package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/types"
)

type BudgetHandler struct {
	tripModel   *models.TripModel
	budgetModel *models.BudgetModel
}

func NewBudgetHandler(tripModel *models.TripModel, budgetModel *models.BudgetModel) *BudgetHandler {
	return &BudgetHandler{
		tripModel:   tripModel,
		budgetModel: budgetModel,
	}
}

func (h *BudgetHandler) scope(c *gin.Context) (tripID int64, userID string, ok bool) {
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

// GetBudgetHandler aggregates spend for the trip. The ?mode= query selects
// the shared (whole trip) or mine (caller's share) view, defaulting to
// shared.
func (h *BudgetHandler) GetBudgetHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	mode := types.BudgetMode(c.DefaultQuery("mode", string(types.BudgetModeShared)))
	report, err := h.budgetModel.GetBudget(c.Request.Context(), tripID, mode, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type limitsRequest struct {
	Mode       types.BudgetMode                 `json:"mode" binding:"required"`
	Total      float64                          `json:"total"`
	Categories map[types.BudgetCategory]float64 `json:"categories"`
}

func (h *BudgetHandler) SaveLimitsHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}

	var req limitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	limits := &types.BudgetLimits{
		TripID:     tripID,
		Mode:       req.Mode,
		Total:      req.Total,
		Categories: req.Categories,
	}
	if err := h.budgetModel.SaveLimits(c.Request.Context(), limits); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, limits)
}
