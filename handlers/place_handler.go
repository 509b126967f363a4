package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/types"
)

// PlaceHandler serves the restaurant (eat) and sight (visit) endpoints. The
// kind is a route segment so both collections share one handler.
type PlaceHandler struct {
	tripModel    *models.TripModel
	bookingModel *models.BookingModel
}

func NewPlaceHandler(tripModel *models.TripModel, bookingModel *models.BookingModel) *PlaceHandler {
	return &PlaceHandler{
		tripModel:    tripModel,
		bookingModel: bookingModel,
	}
}

func (h *PlaceHandler) scope(c *gin.Context) (tripID int64, userID string, ok bool) {
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

func placeKindParam(c *gin.Context) (types.PlaceKind, bool) {
	kind := types.PlaceKind(c.Param("kind"))
	if !kind.IsValid() {
		_ = c.Error(errors.ValidationFailed("Invalid place kind", c.Param("kind")))
		return "", false
	}
	return kind, true
}

func (h *PlaceHandler) CreatePlaceHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	kind, ok := placeKindParam(c)
	if !ok {
		return
	}

	var place types.Place
	if err := c.ShouldBindJSON(&place); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	place.TripID = tripID
	place.Kind = kind
	place.CreatedBy = userID

	if err := h.bookingModel.CreatePlace(c.Request.Context(), &place); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, place)
}

func (h *PlaceHandler) ListPlacesHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	kind, ok := placeKindParam(c)
	if !ok {
		return
	}

	places, err := h.bookingModel.ListPlaces(c.Request.Context(), tripID, kind)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, places)
}

func (h *PlaceHandler) DeletePlaceHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	kind, ok := placeKindParam(c)
	if !ok {
		return
	}
	placeID, ok := int64Param(c, "placeId")
	if !ok {
		return
	}

	h.bookingModel.DeletePlace(c.Request.Context(), tripID, kind, placeID)
	c.Status(http.StatusNoContent)
}

func (h *PlaceHandler) ConfirmPlaceHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	kind, ok := placeKindParam(c)
	if !ok {
		return
	}
	placeID, ok := int64Param(c, "placeId")
	if !ok {
		return
	}
	req, ok := bindConfirmRequest(c)
	if !ok {
		return
	}

	place, err := h.bookingModel.ConfirmPlace(c.Request.Context(), tripID, kind, placeID, req, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, place)
}

type visitedRequest struct {
	Visited bool `json:"visited"`
	types.ConfirmRequest
}

// SetVisitedHandler toggles the visited flag. Marking visited carries a cost
// entry in the same body; unmarking clears any recorded cost.
func (h *PlaceHandler) SetVisitedHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	kind, ok := placeKindParam(c)
	if !ok {
		return
	}
	placeID, ok := int64Param(c, "placeId")
	if !ok {
		return
	}

	var req visitedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	place, err := h.bookingModel.SetPlaceVisited(c.Request.Context(), tripID, kind, placeID, req.Visited, &req.ConfirmRequest)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, place)
}
