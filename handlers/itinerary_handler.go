package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/types"
)

type ItineraryHandler struct {
	tripModel      *models.TripModel
	itineraryModel *models.ItineraryModel
}

func NewItineraryHandler(tripModel *models.TripModel, itineraryModel *models.ItineraryModel) *ItineraryHandler {
	return &ItineraryHandler{
		tripModel:      tripModel,
		itineraryModel: itineraryModel,
	}
}

func (h *ItineraryHandler) GetItineraryHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	if !authorizeTrip(c, h.tripModel, tripID, userID) {
		return
	}

	days, err := h.itineraryModel.GetItinerary(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *ItineraryHandler) AddActivityHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	if !authorizeTrip(c, h.tripModel, tripID, userID) {
		return
	}

	var create types.ItineraryItemCreate
	if err := c.ShouldBindJSON(&create); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	item, err := h.itineraryModel.AddActivity(c.Request.Context(), tripID, &create, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItineraryHandler) DeleteActivityHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}
	itemID, ok := int64Param(c, "itemId")
	if !ok {
		return
	}
	date := c.Param("date")
	if date == "" {
		_ = c.Error(errors.ValidationFailed("A date is required", ""))
		return
	}
	if !authorizeTrip(c, h.tripModel, tripID, userID) {
		return
	}

	if err := h.itineraryModel.DeleteActivity(c.Request.Context(), tripID, date, itemID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
