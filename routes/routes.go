package routes

import (
	"net/http"
	"time"

	"wayfarer/handlers"
	"wayfarer/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Itinerary *handlers.ItineraryHandler
	Places    *handlers.PlacesHandler
	Trips     *handlers.TripHandler
}

// RegisterItineraryRoutes sets up the planning session endpoints.
func RegisterItineraryRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/itinerary")
	{
		api.POST("/session", hb.Itinerary.InitiateSession)
		api.GET("/session/:sessionID", hb.Itinerary.GetSession)
		api.POST("/session/:sessionID/activities", hb.Itinerary.AddActivity)
		api.PATCH("/session/:sessionID/activities", hb.Itinerary.UpdateActivity)
		api.DELETE("/session/:sessionID/activities", hb.Itinerary.RemoveActivity)
		api.GET("/session/:sessionID/budget", hb.Itinerary.GetBudget)
		api.POST("/session/:sessionID/confirm", hb.Itinerary.ConfirmTrip)
		api.DELETE("/session/:sessionID", hb.Itinerary.CancelSession)
	}
}

// RegisterPlacesRoutes sets up candidate search endpoints.
func RegisterPlacesRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/places")
	{
		api.GET("/search", hb.Places.SearchCandidates)
	}
}

// RegisterTripRoutes sets up endpoints for confirmed trips.
func RegisterTripRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/trips")
	{
		api.GET("/id/:id", hb.Trips.GetTripByID)
		api.GET("/user/:userID", hb.Trips.GetTripsByUser)
		api.DELETE("/id/:id", hb.Trips.DeleteTrip)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterItineraryRoutes(r, hb)
	RegisterPlacesRoutes(r, hb)
	RegisterTripRoutes(r, hb)
	RegisterHealthRoute(r)
}
