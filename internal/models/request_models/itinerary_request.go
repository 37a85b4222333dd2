package request_models

import "journeys/internal/models/db_models"

type AddItineraryItemRequest struct {
	PlaceID   string `json:"place_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Duration  int    `json:"duration" binding:"required,gt=0"`
	Notes     string `json:"notes"`
}

func (r AddItineraryItemRequest) ToItem() db_models.ItineraryItem {
	return db_models.ItineraryItem{
		PlaceID:   r.PlaceID,
		Date:      r.Date,
		StartTime: r.StartTime,
		Duration:  r.Duration,
		Notes:     r.Notes,
	}
}

// UpdateItineraryItemRequest is a partial update: nil fields are left untouched.
type UpdateItineraryItemRequest struct {
	PlaceID   *string `json:"place_id,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (r UpdateItineraryItemRequest) Apply(item db_models.ItineraryItem) db_models.ItineraryItem {
	if r.PlaceID != nil {
		item.PlaceID = *r.PlaceID
	}
	if r.Date != nil {
		item.Date = *r.Date
	}
	if r.StartTime != nil {
		item.StartTime = *r.StartTime
	}
	if r.Duration != nil {
		item.Duration = *r.Duration
	}
	if r.Notes != nil {
		item.Notes = *r.Notes
	}
	return item
}
