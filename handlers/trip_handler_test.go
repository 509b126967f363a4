package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triplogue/triplogue-backend/db"
	"github.com/triplogue/triplogue-backend/logger"
	"github.com/triplogue/triplogue-backend/middleware"
	"github.com/triplogue/triplogue-backend/models"
	"github.com/triplogue/triplogue-backend/services"
	"github.com/triplogue/triplogue-backend/store/memory"
	"github.com/triplogue/triplogue-backend/types"
)

func init() {
	logger.IsTest = true
	gin.SetMode(gin.TestMode)
}

// testUserMiddleware injects the user id from a test header, standing in for
// the JWT auth middleware.
func testUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := c.GetHeader("X-Test-User"); user != "" {
			c.Set(string(middleware.UserIDKey), user)
		}
		c.Next()
	}
}

func newTripTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	docStore := memory.NewDocumentStore()
	tripDB := db.NewTripDB(docStore)
	userDB := db.NewUserDB(docStore)
	tripModel := models.NewTripModel(tripDB, userDB, nil)
	resolver := services.NewUserResolver(userDB, nil)
	handler := NewTripHandler(tripModel, resolver)

	r := gin.New()
	r.Use(middleware.ErrorHandler(), testUserMiddleware())
	trips := r.Group("/v1/trips")
	{
		trips.POST("", handler.CreateTripHandler)
		trips.GET("", handler.ListTripsHandler)
		trips.GET("/:id", handler.GetTripHandler)
		trips.PUT("/:id", handler.UpdateTripHandler)
		trips.DELETE("/:id", handler.DeleteTripHandler)
		trips.POST("/:id/invite", handler.InviteMemberHandler)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestTrip(t *testing.T, r *gin.Engine, user string) types.Trip {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/v1/trips", user,
		`{"destination":"Lisbon","country":"Portugal","year":2024,"startDate":"2024-05-01","endDate":"2024-05-07"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var trip types.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
	return trip
}

func TestCreateTripHandler(t *testing.T) {
	r := newTripTestRouter(t)

	trip := createTestTrip(t, r, "alice")

	assert.NotZero(t, trip.ID)
	assert.Equal(t, "Lisbon", trip.Destination)
	assert.Equal(t, "alice", trip.OwnerID)
	assert.Equal(t, types.TripStatusUpcoming, trip.Status)
}

func TestCreateTripHandlerRejectsBadBody(t *testing.T) {
	r := newTripTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/trips", "alice", `{"country":"Portugal"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestCreateTripHandlerRequiresUser(t *testing.T) {
	r := newTripTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/trips", "", `{"destination":"X","startDate":"2024-05-01","endDate":"2024-05-02"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetTripHandlerMembershipEnforced(t *testing.T) {
	r := newTripTestRouter(t)
	trip := createTestTrip(t, r, "alice")

	w := doJSON(t, r, http.MethodGet, "/v1/trips/"+itoa(trip.ID), "alice", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/trips/"+itoa(trip.ID), "mallory", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "TRIP_ACCESS_DENIED")
}

func TestGetTripHandlerInvalidID(t *testing.T) {
	r := newTripTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/v1/trips/notanumber", "alice", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTripsHandlerScopedToUser(t *testing.T) {
	r := newTripTestRouter(t)
	createTestTrip(t, r, "alice")
	createTestTrip(t, r, "bob")

	w := doJSON(t, r, http.MethodGet, "/v1/trips", "alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	var trips []types.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trips))
	require.Len(t, trips, 1)
	assert.Equal(t, "alice", trips[0].OwnerID)
}

func TestInviteAndDeleteFlow(t *testing.T) {
	r := newTripTestRouter(t)
	trip := createTestTrip(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/v1/trips/"+itoa(trip.ID)+"/invite", "alice", `{"userId":"bob"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// Bob can now see the trip but not delete it.
	w = doJSON(t, r, http.MethodGet, "/v1/trips/"+itoa(trip.ID), "bob", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/v1/trips/"+itoa(trip.ID), "bob", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/v1/trips/"+itoa(trip.ID), "alice", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/trips/"+itoa(trip.ID), "alice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTripHandler(t *testing.T) {
	r := newTripTestRouter(t)
	trip := createTestTrip(t, r, "alice")

	w := doJSON(t, r, http.MethodPut, "/v1/trips/"+itoa(trip.ID), "alice", `{"status":"ongoing"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var updated types.Trip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, types.TripStatusOngoing, updated.Status)
	assert.Equal(t, "Lisbon", updated.Destination)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
