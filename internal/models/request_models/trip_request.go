package request_models

import "journeys/internal/models/db_models"

type CreateTripRequest struct {
	Name        string               `json:"name" binding:"required"`
	Destination string               `json:"destination" binding:"required"`
	CityID      string               `json:"city_id"`
	StartDate   string               `json:"start_date" binding:"required"`
	EndDate     string               `json:"end_date" binding:"required"`
	CoverImage  string               `json:"cover_image"`
	Travelers   []db_models.User     `json:"travelers"`
	Budget      *float64             `json:"budget" binding:"omitempty,gte=0"`
	Status      db_models.TripStatus `json:"status"`
}

// ToTrip builds the trip without identity or timestamps; the data layer
// assigns those on creation. An empty status defaults to planning.
func (r CreateTripRequest) ToTrip() db_models.Trip {
	status := r.Status
	if status == "" {
		status = db_models.TripStatusPlanning
	}
	t := db_models.Trip{
		Name:        r.Name,
		Destination: r.Destination,
		CityID:      r.CityID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		CoverImage:  r.CoverImage,
		Travelers:   r.Travelers,
		Budget:      r.Budget,
		Status:      status,
	}
	if t.Travelers == nil {
		t.Travelers = []db_models.User{}
	}
	return t.Clone()
}

// UpdateTripRequest is a partial update: nil fields are left untouched.
type UpdateTripRequest struct {
	Name        *string               `json:"name,omitempty"`
	Destination *string               `json:"destination,omitempty"`
	CityID      *string               `json:"city_id,omitempty"`
	StartDate   *string               `json:"start_date,omitempty"`
	EndDate     *string               `json:"end_date,omitempty"`
	CoverImage  *string               `json:"cover_image,omitempty"`
	Travelers   *[]db_models.User     `json:"travelers,omitempty"`
	Budget      *float64              `json:"budget,omitempty" binding:"omitempty,gte=0"`
	Status      *db_models.TripStatus `json:"status,omitempty"`
}

func (r UpdateTripRequest) Apply(t db_models.Trip) db_models.Trip {
	out := t.Clone()
	if r.Name != nil {
		out.Name = *r.Name
	}
	if r.Destination != nil {
		out.Destination = *r.Destination
	}
	if r.CityID != nil {
		out.CityID = *r.CityID
	}
	if r.StartDate != nil {
		out.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		out.EndDate = *r.EndDate
	}
	if r.CoverImage != nil {
		out.CoverImage = *r.CoverImage
	}
	if r.Travelers != nil {
		out.Travelers = make([]db_models.User, len(*r.Travelers))
		copy(out.Travelers, *r.Travelers)
	}
	if r.Budget != nil {
		b := *r.Budget
		out.Budget = &b
	}
	if r.Status != nil {
		out.Status = *r.Status
	}
	return out
}

type TripListRequest struct {
	Filter string `form:"filter"`
}
