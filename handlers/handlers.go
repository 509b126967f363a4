// Package handlers wires HTTP requests to the model layer. Handlers bind
// and validate input, push failures onto the gin context for the error
// middleware, and render success responses.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/triplogue/triplogue-backend/errors"
	"github.com/triplogue/triplogue-backend/middleware"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/types"
)

// tripIDParam parses the :id route segment. On failure it records a
// validation error and returns false.
func tripIDParam(c *gin.Context) (int64, bool) {
	return int64Param(c, "id")
}

func int64Param(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(errors.ValidationFailed("Invalid id", raw))
		return 0, false
	}
	return id, true
}

// requireUser returns the authenticated user id, recording an auth error
// when the auth middleware did not run or the context is empty.
func requireUser(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		_ = c.Error(errors.AuthenticationFailed("User not authenticated"))
		return "", false
	}
	return userID, true
}

// authorizeTrip checks that the user is a member of the trip before any
// trip-scoped operation runs. Access failures surface as 403, missing trips
// as 404.
func authorizeTrip(c *gin.Context, tripModel *models.TripModel, tripID int64, userID string) bool {
	if _, err := tripModel.GetTripByID(c.Request.Context(), tripID, userID); err != nil {
		_ = c.Error(err)
		return false
	}
	return true
}

// listModeQuery reads the ?mode= query for packing and expense endpoints,
// defaulting to the shared namespace.
func listModeQuery(c *gin.Context) types.ListMode {
	mode := types.ListMode(c.DefaultQuery("mode", string(types.ListModeShared)))
	return mode
}
