package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journeys/internal/models/request_models"
	"journeys/internal/services"
	"journeys/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// ListTrips godoc
// @Summary List trips
// @Description Tab counts plus the trips of one tab, grouped by start month
// @Tags Trips
// @Produce json
// @Param filter query string false "all, upcoming, past or shared" default(all)
// @Success 200 {object} response_models.TripListResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips [get]
func (t *TripController) ListTrips(c *gin.Context) {
	var req request_models.TripListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), req.Filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get trip detail
// @Tags Trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} response_models.TripDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTripDetail(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// CreateTrip godoc
// @Summary Create trip
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.CreateTripRequest true "Trip"
// @Success 201 {object} db_models.Trip
// @Failure 400 {object} utils.APIResponse
// @Router /trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name, destination, start_date and end_date are required")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

// UpdateTrip godoc
// @Summary Update trip
// @Description Partial update; omitted fields keep their value
// @Tags Trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.UpdateTripRequest true "Changed fields"
// @Success 200 {object} db_models.Trip
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /trips/{tripId} [patch]
func (t *TripController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated successfully")
}
