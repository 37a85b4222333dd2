package response_models

import (
	"journeys/internal/models/db_models"
	"journeys/internal/state"
)

type MapStateResponse struct {
	state.MapFilterSnapshot
	Categories []db_models.Category `json:"categories"`
}

type MapPlacesResponse struct {
	State  MapStateResponse  `json:"state"`
	Places []db_models.Place `json:"places"`
}
