package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journeys/internal/models/db_models"
	"journeys/internal/models/request_models"
	"journeys/internal/state"
	"journeys/pkg/utils"
)

// StoreController exposes the persisted client trip cache.
type StoreController struct {
	store *state.TripsStore
}

func NewStoreController(store *state.TripsStore) *StoreController {
	return &StoreController{
		store: store,
	}
}

func (s *StoreController) GetStore(c *gin.Context) {
	utils.RespondSuccess(c, s.store.Snapshot(), "Store fetched successfully")
}

func (s *StoreController) SetTrips(c *gin.Context) {
	var req request_models.SetStoreTripsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	utils.RespondSuccess(c, s.store.SetTrips(c.Request.Context(), req.Trips), "Trips stored")
}

func (s *StoreController) AddTrip(c *gin.Context) {
	var trip db_models.Trip
	if err := c.ShouldBindJSON(&trip); err != nil || trip.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip with an id is required")
		return
	}

	utils.RespondCreated(c, s.store.AddTrip(c.Request.Context(), trip), "Trip stored")
}

func (s *StoreController) SetCurrentTrip(c *gin.Context) {
	var req request_models.SetCurrentTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	utils.RespondSuccess(c, s.store.SetCurrentTrip(c.Request.Context(), req.TripID), "Current trip updated")
}

func (s *StoreController) SetItinerary(c *gin.Context) {
	var req request_models.SetStoreItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	utils.RespondSuccess(c, s.store.SetItinerary(c.Request.Context(), c.Param("tripId"), req.Items), "Itinerary stored")
}

func (s *StoreController) AddItineraryItem(c *gin.Context) {
	var item db_models.ItineraryItem
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary item with an id is required")
		return
	}

	utils.RespondCreated(c, s.store.AddItineraryItem(c.Request.Context(), c.Param("tripId"), item), "Itinerary item stored")
}

func (s *StoreController) UpdateItineraryItem(c *gin.Context) {
	var req request_models.UpdateItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	snap, err := s.store.UpdateItineraryItem(c.Request.Context(), c.Param("tripId"), c.Param("itemId"), req.Apply)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snap, "Itinerary item updated")
}

func (s *StoreController) RemoveItineraryItem(c *gin.Context) {
	snap, err := s.store.RemoveItineraryItem(c.Request.Context(), c.Param("tripId"), c.Param("itemId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, snap, "Itinerary item removed")
}
