package views

import (
	"math"

	"journeys/internal/models/db_models"
)

type Budget struct {
	Total          float64 `json:"total"`
	Accommodation  float64 `json:"accommodation"`
	FoodAndDining  float64 `json:"food_and_dining"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
}

// BudgetBreakdown splits a trip budget 40/30/20/10, rounding each share
// down to a whole unit. Trips without a budget get nil.
func BudgetBreakdown(t db_models.Trip) *Budget {
	if t.Budget == nil {
		return nil
	}
	total := *t.Budget
	return &Budget{
		Total:          total,
		Accommodation:  math.Floor(total * 0.4),
		FoodAndDining:  math.Floor(total * 0.3),
		Activities:     math.Floor(total * 0.2),
		Transportation: math.Floor(total * 0.1),
	}
}
