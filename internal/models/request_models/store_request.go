package request_models

import "journeys/internal/models/db_models"

type SetStoreTripsRequest struct {
	Trips []db_models.Trip `json:"trips"`
}

// SetCurrentTripRequest clears the current trip when TripID is null.
type SetCurrentTripRequest struct {
	TripID *string `json:"trip_id"`
}

type SetStoreItineraryRequest struct {
	Items []db_models.ItineraryItem `json:"items"`
}

type SelectPlaceRequest struct {
	PlaceID *string `json:"place_id"`
}
