package routes

import (
	"wayfare/auth"
	"wayfare/itinerary"
	"wayfare/live"
	"wayfare/middleware"
	"wayfare/places"
	"wayfare/planner"
	"wayfare/ratelim"
	"wayfare/trips"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(middleware.Authenticate(auth.RefreshToken)))
}

func AddTripRoutes(router *httprouter.Router) {
	router.POST("/api/trips", ratelim.RateLimit(middleware.Authenticate(trips.CreateTrip)))
	router.GET("/api/trips", middleware.Authenticate(trips.GetTrips))
	router.GET("/api/trips/search", ratelim.RateLimit(trips.SearchTrips))
	router.POST("/api/trips/join", ratelim.RateLimit(middleware.Authenticate(trips.JoinTrip)))
	router.GET("/api/trips/:tripid", middleware.OptionalAuth(trips.GetTrip))
	router.PUT("/api/trips/:tripid", middleware.Authenticate(trips.UpdateTrip))
	router.DELETE("/api/trips/:tripid", middleware.Authenticate(trips.DeleteTrip))
	router.POST("/api/trips/:tripid/fork", ratelim.RateLimit(middleware.Authenticate(trips.ForkTrip)))
	router.PUT("/api/trips/:tripid/publish", middleware.Authenticate(trips.PublishTrip))
	router.POST("/api/trips/:tripid/invite", middleware.Authenticate(trips.GetInvite))
	router.GET("/api/trips/:tripid/members", middleware.Authenticate(trips.GetMembers))
	router.DELETE("/api/trips/:tripid/members/:userid", middleware.Authenticate(trips.RemoveMember))
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handlers) {
	router.POST("/api/trips/:tripid/records", ratelim.RateLimit(middleware.Authenticate(h.CreateRecord)))
	router.GET("/api/trips/:tripid/records", middleware.Authenticate(h.GetRecords))
	router.GET("/api/trips/:tripid/dayview", middleware.Authenticate(h.GetDayView))
	router.PUT("/api/trips/:tripid/records/:recordid", middleware.Authenticate(h.UpdateRecord))
	router.PATCH("/api/trips/:tripid/records/:recordid/complete", middleware.Authenticate(h.ToggleRecordComplete))
	router.DELETE("/api/trips/:tripid/records/:recordid", middleware.Authenticate(h.DeleteRecord))
}

func AddPlannerRoutes(router *httprouter.Router) {
	router.POST("/api/trips/:tripid/generate", ratelim.RateLimit(middleware.Authenticate(planner.GenerateItinerary)))
}

func AddPlaceRoutes(router *httprouter.Router, h *places.Handlers) {
	router.GET("/api/places/lookup", ratelim.RateLimit(h.Lookup))
	router.POST("/api/places/place", middleware.Authenticate(h.CreatePlace))
	router.GET("/api/suggestions/places/nearby", ratelim.RateLimit(places.GetNearbyPlaces))
}

func AddLiveRoutes(router *httprouter.Router, hub *live.Hub) {
	router.GET("/ws/trips/:tripid", live.WebSocketHandler(hub))
}
