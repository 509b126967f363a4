package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/types"
)

// BookingHandler serves the flight, hotel, and transport endpoints. Place
// endpoints live in PlaceHandler; both share the booking model.
type BookingHandler struct {
	tripModel    *models.TripModel
	bookingModel *models.BookingModel
}

func NewBookingHandler(tripModel *models.TripModel, bookingModel *models.BookingModel) *BookingHandler {
	return &BookingHandler{
		tripModel:    tripModel,
		bookingModel: bookingModel,
	}
}

// scope runs the shared auth and param plumbing for trip-scoped routes.
func (h *BookingHandler) scope(c *gin.Context) (tripID int64, userID string, ok bool) {
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

func bindConfirmRequest(c *gin.Context) (*types.ConfirmRequest, bool) {
	var req types.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return nil, false
	}
	return &req, true
}

// --- Flights ---

func (h *BookingHandler) CreateFlightHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var flight types.Flight
	if err := c.ShouldBindJSON(&flight); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	flight.TripID = tripID
	flight.CreatedBy = userID

	if err := h.bookingModel.CreateFlight(c.Request.Context(), &flight); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *BookingHandler) ListFlightsHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}

	flights, err := h.bookingModel.ListFlights(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *BookingHandler) DeleteFlightHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	flightID, ok := int64Param(c, "flightId")
	if !ok {
		return
	}

	h.bookingModel.DeleteFlight(c.Request.Context(), tripID, flightID)
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) ConfirmFlightHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	flightID, ok := int64Param(c, "flightId")
	if !ok {
		return
	}
	req, ok := bindConfirmRequest(c)
	if !ok {
		return
	}

	flight, err := h.bookingModel.ConfirmFlight(c.Request.Context(), tripID, flightID, req, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

// --- Hotels ---

func (h *BookingHandler) CreateHotelHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var hotel types.Hotel
	if err := c.ShouldBindJSON(&hotel); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	hotel.TripID = tripID
	hotel.CreatedBy = userID

	if err := h.bookingModel.CreateHotel(c.Request.Context(), &hotel); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, hotel)
}

func (h *BookingHandler) ListHotelsHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}

	hotels, err := h.bookingModel.ListHotels(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, hotels)
}

func (h *BookingHandler) DeleteHotelHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	hotelID, ok := int64Param(c, "hotelId")
	if !ok {
		return
	}

	h.bookingModel.DeleteHotel(c.Request.Context(), tripID, hotelID)
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) ConfirmHotelHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	hotelID, ok := int64Param(c, "hotelId")
	if !ok {
		return
	}
	req, ok := bindConfirmRequest(c)
	if !ok {
		return
	}

	hotel, err := h.bookingModel.ConfirmHotel(c.Request.Context(), tripID, hotelID, req, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, hotel)
}

// --- Transports ---

func (h *BookingHandler) CreateTransportHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}

	var transport types.Transport
	if err := c.ShouldBindJSON(&transport); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}
	transport.TripID = tripID
	transport.CreatedBy = userID

	if err := h.bookingModel.CreateTransport(c.Request.Context(), &transport); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, transport)
}

func (h *BookingHandler) ListTransportsHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}

	transports, err := h.bookingModel.ListTransports(c.Request.Context(), tripID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, transports)
}

func (h *BookingHandler) DeleteTransportHandler(c *gin.Context) {
	tripID, _, ok := h.scope(c)
	if !ok {
		return
	}
	transportID, ok := int64Param(c, "transportId")
	if !ok {
		return
	}

	h.bookingModel.DeleteTransport(c.Request.Context(), tripID, transportID)
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) ConfirmTransportHandler(c *gin.Context) {
	tripID, userID, ok := h.scope(c)
	if !ok {
		return
	}
	transportID, ok := int64Param(c, "transportId")
	if !ok {
		return
	}
	req, ok := bindConfirmRequest(c)
	if !ok {
		return
	}

	transport, err := h.bookingModel.ConfirmTransport(c.Request.Context(), tripID, transportID, req, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, transport)
}
