// Package router assembles the gin engine from its handler dependencies.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/triplogue/triplogue-backend/config"
	"github.com/triplogue/triplogue-backend/handlers"
	"github.com/triplogue/triplogue-backend/middleware"
)

// Dependencies carries everything SetupRouter needs to wire the routes.
type Dependencies struct {
	Config *config.ServerConfig

	TripHandler      *handlers.TripHandler
	ItineraryHandler *handlers.ItineraryHandler
	BookingHandler   *handlers.BookingHandler
	PlaceHandler     *handlers.PlaceHandler
	ChecklistHandler *handlers.ChecklistHandler
	BudgetHandler    *handlers.BudgetHandler
	MemoryHandler    *handlers.MemoryHandler
	UserHandler      *handlers.UserHandler
	HealthHandler    *handlers.HealthHandler
}

// SetupRouter builds the engine: health and metrics are open, everything
// under /v1 requires a valid bearer token.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(deps.Config),
		middleware.ErrorHandler(),
	)

	r.GET("/health", deps.HealthHandler.DetailedHealthHandler)
	r.GET("/health/liveness", deps.HealthHandler.LivenessHandler)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.Use(middleware.AuthMiddleware(deps.Config.JwtSecretKey))

	users := v1.Group("/users")
	{
		users.GET("/me", deps.UserHandler.GetProfileHandler)
		users.PUT("/me", deps.UserHandler.SaveProfileHandler)
		users.POST("/resolve", deps.UserHandler.ResolveNamesHandler)
	}

	trips := v1.Group("/trips")
	{
		trips.POST("", deps.TripHandler.CreateTripHandler)
		trips.GET("", deps.TripHandler.ListTripsHandler)
		trips.GET("/:id", deps.TripHandler.GetTripHandler)
		trips.PUT("/:id", deps.TripHandler.UpdateTripHandler)
		trips.DELETE("/:id", deps.TripHandler.DeleteTripHandler)
		trips.POST("/:id/invite", deps.TripHandler.InviteMemberHandler)
	}

	trip := trips.Group("/:id")

	trip.GET("/itinerary", deps.ItineraryHandler.GetItineraryHandler)
	trip.POST("/itinerary/items", deps.ItineraryHandler.AddActivityHandler)
	trip.DELETE("/itinerary/:date/items/:itemId", deps.ItineraryHandler.DeleteActivityHandler)

	trip.POST("/flights", deps.BookingHandler.CreateFlightHandler)
	trip.GET("/flights", deps.BookingHandler.ListFlightsHandler)
	trip.DELETE("/flights/:flightId", deps.BookingHandler.DeleteFlightHandler)
	trip.POST("/flights/:flightId/confirm", deps.BookingHandler.ConfirmFlightHandler)

	trip.POST("/hotels", deps.BookingHandler.CreateHotelHandler)
	trip.GET("/hotels", deps.BookingHandler.ListHotelsHandler)
	trip.DELETE("/hotels/:hotelId", deps.BookingHandler.DeleteHotelHandler)
	trip.POST("/hotels/:hotelId/confirm", deps.BookingHandler.ConfirmHotelHandler)

	trip.POST("/transports", deps.BookingHandler.CreateTransportHandler)
	trip.GET("/transports", deps.BookingHandler.ListTransportsHandler)
	trip.DELETE("/transports/:transportId", deps.BookingHandler.DeleteTransportHandler)
	trip.POST("/transports/:transportId/confirm", deps.BookingHandler.ConfirmTransportHandler)

	trip.POST("/places/:kind", deps.PlaceHandler.CreatePlaceHandler)
	trip.GET("/places/:kind", deps.PlaceHandler.ListPlacesHandler)
	trip.DELETE("/places/:kind/:placeId", deps.PlaceHandler.DeletePlaceHandler)
	trip.POST("/places/:kind/:placeId/confirm", deps.PlaceHandler.ConfirmPlaceHandler)
	trip.PUT("/places/:kind/:placeId/visited", deps.PlaceHandler.SetVisitedHandler)

	trip.POST("/packing", deps.ChecklistHandler.CreatePackingItemHandler)
	trip.GET("/packing", deps.ChecklistHandler.ListPackingItemsHandler)
	trip.PUT("/packing/:itemId/packed", deps.ChecklistHandler.SetPackedHandler)
	trip.DELETE("/packing/:itemId", deps.ChecklistHandler.DeletePackingItemHandler)

	trip.POST("/shopping", deps.ChecklistHandler.CreateShoppingItemHandler)
	trip.GET("/shopping", deps.ChecklistHandler.ListShoppingItemsHandler)
	trip.PUT("/shopping/:itemId/bought", deps.ChecklistHandler.SetBoughtHandler)
	trip.DELETE("/shopping/:itemId", deps.ChecklistHandler.DeleteShoppingItemHandler)

	trip.POST("/expenses", deps.ChecklistHandler.CreateExpenseHandler)
	trip.GET("/expenses", deps.ChecklistHandler.ListExpensesHandler)
	trip.DELETE("/expenses/:expenseId", deps.ChecklistHandler.DeleteExpenseHandler)

	trip.GET("/budget", deps.BudgetHandler.GetBudgetHandler)
	trip.PUT("/budget/limits", deps.BudgetHandler.SaveLimitsHandler)

	trip.POST("/photos", deps.MemoryHandler.CreatePhotoHandler)
	trip.GET("/photos", deps.MemoryHandler.ListPhotosHandler)
	trip.DELETE("/photos/:photoId", deps.MemoryHandler.DeletePhotoHandler)

	trip.POST("/scrapbook", deps.MemoryHandler.CreateScrapbookEntryHandler)
	trip.GET("/scrapbook", deps.MemoryHandler.ListScrapbookEntriesHandler)
	trip.DELETE("/scrapbook/:entryId", deps.MemoryHandler.DeleteScrapbookEntryHandler)

	return r
}
