package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/services"
	"github.com/triplogue/triplogue-backend/types"
)

type TripHandler struct {
	tripModel *models.TripModel
	resolver  *services.UserResolver
}

func NewTripHandler(tripModel *models.TripModel, resolver *services.UserResolver) *TripHandler {
	return &TripHandler{
		tripModel: tripModel,
		resolver:  resolver,
	}
}

type tripCreateRequest struct {
	Destination string `json:"destination" binding:"required"`
	Country     string `json:"country"`
	Year        int    `json:"year"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

type tripResponse struct {
	types.Trip
	MemberNames map[string]string `json:"memberNames,omitempty"`
}

func (h *TripHandler) CreateTripHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req tripCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	trip := &types.Trip{
		Destination: req.Destination,
		Country:     req.Country,
		Year:        req.Year,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedBy:   userID,
	}
	if err := h.tripModel.CreateTrip(c.Request.Context(), trip); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *TripHandler) ListTripsHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	trips, err := h.tripModel.ListUserTrips(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *TripHandler) GetTripHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	trip, err := h.tripModel.GetTripByID(c.Request.Context(), tripID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := tripResponse{Trip: *trip}
	if h.resolver != nil {
		resp.MemberNames = h.resolver.DisplayNames(c.Request.Context(), trip.MemberIDs)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TripHandler) UpdateTripHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var update types.TripUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	trip, err := h.tripModel.UpdateTrip(c.Request.Context(), tripID, userID, &update)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) DeleteTripHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	if err := h.tripModel.DeleteTrip(c.Request.Context(), tripID, userID); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

type inviteRequest struct {
	UserID string `json:"userId" binding:"required"`
}

func (h *TripHandler) InviteMemberHandler(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	tripID, ok := tripIDParam(c)
	if !ok {
		return
	}

	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	trip, err := h.tripModel.InviteMember(c.Request.Context(), tripID, userID, req.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, trip)
}
