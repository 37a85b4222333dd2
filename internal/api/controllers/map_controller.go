package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journeys/internal/models/db_models"
	"journeys/internal/models/request_models"
	"journeys/internal/models/response_models"
	"journeys/internal/services"
	"journeys/internal/state"
	"journeys/pkg/utils"
)

type MapController struct {
	catalogService services.CatalogServiceInterface
	filters        *state.MapFilterState
}

func NewMapController(catalogService services.CatalogServiceInterface, filters *state.MapFilterState) *MapController {
	return &MapController{
		catalogService: catalogService,
		filters:        filters,
	}
}

func (m *MapController) stateResponse() response_models.MapStateResponse {
	return response_models.MapStateResponse{
		MapFilterSnapshot: m.filters.Snapshot(),
		Categories:        db_models.Categories,
	}
}

func (m *MapController) GetState(c *gin.Context) {
	utils.RespondSuccess(c, m.stateResponse(), "Map state fetched successfully")
}

// GetPlaces godoc
// @Summary Map pins
// @Description Places under the active category filters; no active filter shows every place
// @Tags Map
// @Produce json
// @Success 200 {object} response_models.MapPlacesResponse
// @Router /map/places [get]
func (m *MapController) GetPlaces(c *gin.Context) {
	st := m.stateResponse()
	places, err := m.catalogService.MapPlaces(c.Request.Context(), st.ActiveFilters)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.MapPlacesResponse{State: st, Places: places}, "Map places fetched successfully")
}

func (m *MapController) ToggleFilter(c *gin.Context) {
	category, err := db_models.ParseCategory(c.Param("category"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	m.filters.ToggleFilter(category)
	utils.RespondSuccess(c, m.stateResponse(), "Filter toggled")
}

func (m *MapController) ClearFilters(c *gin.Context) {
	m.filters.ClearFilters()
	utils.RespondSuccess(c, m.stateResponse(), "Filters cleared")
}

// SelectPlace godoc
// @Summary Select map pin
// @Description A null place_id clears the selection
// @Tags Map
// @Accept json
// @Produce json
// @Param request body request_models.SelectPlaceRequest true "Place"
// @Success 200 {object} response_models.MapStateResponse
// @Failure 404 {object} utils.APIResponse
// @Router /map/selection [put]
func (m *MapController) SelectPlace(c *gin.Context) {
	var req request_models.SelectPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.PlaceID != nil {
		if _, err := m.catalogService.GetPlace(c.Request.Context(), *req.PlaceID); err != nil {
			utils.HandleServiceError(c, err)
			return
		}
	}

	m.filters.SelectPlace(req.PlaceID)
	utils.RespondSuccess(c, m.stateResponse(), "Selection updated")
}
