package response_models

import (
	"journeys/internal/models/db_models"
	"journeys/internal/views"
)

// TripCard is one row of the trips list.
type TripCard struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Destination   string               `json:"destination"`
	CoverImage    string               `json:"cover_image,omitempty"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	DateRange     string               `json:"date_range"`
	DayCount      int                  `json:"day_count"`
	Status        db_models.TripStatus `json:"status"`
	Travelers     []db_models.User     `json:"travelers"`
	TravelerCount int                  `json:"traveler_count"`
	IsShared      bool                 `json:"is_shared"`
}

type TripMonthGroup struct {
	Label string     `json:"label"`
	Trips []TripCard `json:"trips"`
}

type TripListResponse struct {
	Filter views.TripFilter    `json:"filter"`
	Tabs   views.TripTabCounts `json:"tabs"`
	Groups []TripMonthGroup    `json:"groups"`
}

type TripDetailResponse struct {
	Trip          db_models.Trip `json:"trip"`
	Duration      string         `json:"duration"`
	StartDate     string         `json:"start_date_label"`
	EndDate       string         `json:"end_date_label"`
	TravelerCount int            `json:"traveler_count"`
	ActivityCount int            `json:"activity_count"`
	Budget        *views.Budget  `json:"budget,omitempty"`
}
