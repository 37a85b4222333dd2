package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journeys/internal/models/request_models"
	"journeys/internal/services"
	"journeys/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GetTimeline godoc
// @Summary Trip itinerary timeline
// @Description Items grouped by day with place, weekday and end time
// @Tags Itinerary
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TimelineResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/itinerary [get]
func (i *ItineraryController) GetTimeline(c *gin.Context) {
	timeline, err := i.itineraryService.GetTimeline(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, timeline, "Itinerary fetched successfully")
}

// AddItem godoc
// @Summary Add itinerary item
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.AddItineraryItemRequest true "Item"
// @Success 201 {object} db_models.ItineraryItem
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId}/itinerary [post]
func (i *ItineraryController) AddItem(c *gin.Context) {
	var req request_models.AddItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "place_id, date, start_time and a positive duration are required")
		return
	}

	item, err := i.itineraryService.AddItem(c.Request.Context(), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, item, "Itinerary item added successfully")
}

func (i *ItineraryController) UpdateItem(c *gin.Context) {
	var req request_models.UpdateItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := i.itineraryService.UpdateItem(c.Request.Context(), c.Param("itemId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, item, "Itinerary item updated successfully")
}

func (i *ItineraryController) DeleteItem(c *gin.Context) {
	if err := i.itineraryService.DeleteItem(c.Request.Context(), c.Param("itemId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary item deleted successfully")
}
