package response_models

import (
	"journeys/internal/models/db_models"
	"journeys/internal/views"
)

type CityListResponse struct {
	Seasons []views.SeasonOption `json:"seasons"`
	Season  *views.SeasonOption  `json:"season,omitempty"`
	Cities  []db_models.City     `json:"cities"`
}

type CityDetailResponse struct {
	City   db_models.City    `json:"city"`
	Places []db_models.Place `json:"places"`
}
