package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"journeys/internal/models/request_models"
	"journeys/internal/services"
	"journeys/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListCities godoc
// @Summary Discover cities
// @Description Search cities by name, country or tag, optionally limited to a season
// @Tags Cities
// @Produce json
// @Param q query string false "Search text"
// @Param season query int false "Season index" minimum(0) maximum(3)
// @Success 200 {object} response_models.CityListResponse
// @Failure 400 {object} utils.APIResponse
// @Router /cities [get]
func (cc *CatalogController) ListCities(c *gin.Context) {
	var req request_models.CitySearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query: season must be 0-3")
		return
	}

	cities, err := cc.catalogService.ListCities(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get city detail
// @Tags Cities
// @Produce json
// @Param cityId path string true "City ID"
// @Success 200 {object} response_models.CityDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/{cityId} [get]
func (cc *CatalogController) GetCity(c *gin.Context) {
	city, err := cc.catalogService.GetCityDetail(c.Request.Context(), c.Param("cityId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, city, "City fetched successfully")
}

// SearchPlaces godoc
// @Summary Search places
// @Description Case-insensitive match on name or description, optionally within one city
// @Tags Places
// @Produce json
// @Param q query string false "Search text"
// @Param city_id query string false "City ID"
// @Success 200 {array} db_models.Place
// @Router /places [get]
func (cc *CatalogController) SearchPlaces(c *gin.Context) {
	var req request_models.PlaceSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query")
		return
	}

	places, err := cc.catalogService.SearchPlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (cc *CatalogController) GetPlace(c *gin.Context) {
	place, err := cc.catalogService.GetPlace(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}
