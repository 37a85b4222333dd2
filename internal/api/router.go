package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"journeys/internal/api/controllers"
	"journeys/pkg/middleware"
)

type RouterParams struct {
	fx.In

	Logger    *zap.Logger
	Catalog   *controllers.CatalogController
	Trips     *controllers.TripController
	Itinerary *controllers.ItineraryController
	Map       *controllers.MapController
	Store     *controllers.StoreController
	Social    *controllers.SocialController
	Health    *controllers.HealthController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/health", p.Health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	citiesGroup := r.Group("/cities")
	citiesGroup.GET("", p.Catalog.ListCities)
	citiesGroup.GET("/:cityId", p.Catalog.GetCity)

	placesGroup := r.Group("/places")
	placesGroup.GET("", p.Catalog.SearchPlaces)
	placesGroup.GET("/:placeId", p.Catalog.GetPlace)

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", p.Trips.ListTrips)
	tripsGroup.POST("", p.Trips.CreateTrip)
	tripsGroup.GET("/:tripId", p.Trips.GetTrip)
	tripsGroup.PATCH("/:tripId", p.Trips.UpdateTrip)
	tripsGroup.GET("/:tripId/itinerary", p.Itinerary.GetTimeline)
	tripsGroup.POST("/:tripId/itinerary", p.Itinerary.AddItem)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.PATCH("/:itemId", p.Itinerary.UpdateItem)
	itineraryGroup.DELETE("/:itemId", p.Itinerary.DeleteItem)

	mapGroup := r.Group("/map")
	mapGroup.GET("/state", p.Map.GetState)
	mapGroup.GET("/places", p.Map.GetPlaces)
	mapGroup.POST("/filters/:category/toggle", p.Map.ToggleFilter)
	mapGroup.DELETE("/filters", p.Map.ClearFilters)
	mapGroup.PUT("/selection", p.Map.SelectPlace)

	storeGroup := r.Group("/store")
	storeGroup.GET("", p.Store.GetStore)
	storeGroup.PUT("/trips", p.Store.SetTrips)
	storeGroup.POST("/trips", p.Store.AddTrip)
	storeGroup.PUT("/current-trip", p.Store.SetCurrentTrip)
	storeGroup.PUT("/trips/:tripId/itinerary", p.Store.SetItinerary)
	storeGroup.POST("/trips/:tripId/itinerary", p.Store.AddItineraryItem)
	storeGroup.PATCH("/trips/:tripId/itinerary/:itemId", p.Store.UpdateItineraryItem)
	storeGroup.DELETE("/trips/:tripId/itinerary/:itemId", p.Store.RemoveItineraryItem)

	usersGroup := r.Group("/users")
	usersGroup.GET("", p.Social.ListUsers)
	usersGroup.GET("/:userId", p.Social.GetUser)

	r.GET("/conversations", p.Social.ListConversations)
	r.GET("/conversations/:conversationId/messages", p.Social.GetMessages)
	r.GET("/activity", p.Social.ActivityFeed)
}
