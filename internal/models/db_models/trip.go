package db_models

import "time"

type TripStatus string

const (
	TripStatusPlanning  TripStatus = "planning"
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
)

func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusPlanning, TripStatusUpcoming, TripStatusActive, TripStatusCompleted:
		return true
	}
	return false
}

// Trip is a planned journey. StartDate and EndDate are calendar dates and
// the range is inclusive on both ends.
type Trip struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	CityID      string     `json:"city_id,omitempty"`
	StartDate   string     `json:"start_date"`
	EndDate     string     `json:"end_date"`
	CoverImage  string     `json:"cover_image,omitempty"`
	Travelers   []User     `json:"travelers"`
	Budget      *float64   `json:"budget,omitempty"`
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with t.
func (t Trip) Clone() Trip {
	out := t
	if t.Travelers != nil {
		out.Travelers = make([]User, len(t.Travelers))
		copy(out.Travelers, t.Travelers)
	}
	if t.Budget != nil {
		b := *t.Budget
		out.Budget = &b
	}
	return out
}

func (t Trip) IsShared() bool {
	return len(t.Travelers) > 1
}

func CloneTrips(trips []Trip) []Trip {
	if trips == nil {
		return nil
	}
	out := make([]Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}
