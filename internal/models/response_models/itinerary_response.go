package response_models

import "journeys/internal/models/db_models"

type PlaceSummary struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category db_models.Category `json:"category"`
	ImageURL string             `json:"image_url,omitempty"`
}

type TimelineEntry struct {
	Item    db_models.ItineraryItem `json:"item"`
	EndTime string                  `json:"end_time"`
	// Place is nil when the item points at a place that no longer exists.
	Place *PlaceSummary `json:"place"`
}

type TimelineDay struct {
	Date      string          `json:"date"`
	DayNumber int             `json:"day_number"`
	Weekday   string          `json:"weekday"`
	ShortDate string          `json:"short_date"`
	Entries   []TimelineEntry `json:"entries"`
}

type TimelineResponse struct {
	TripID         string        `json:"trip_id"`
	TripName       string        `json:"trip_name"`
	DateRangeLabel string        `json:"date_range_label"`
	ItemCount      int           `json:"item_count"`
	Days           []TimelineDay `json:"days"`
}
