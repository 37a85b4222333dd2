// Package views computes the filtered, grouped and sorted collections the
// client screens render. Every function is pure: inputs are never mutated
// and empty input yields an empty result.
package views

import (
	"fmt"
	"slices"
	"time"

	"journeys/internal/models/db_models"
	"journeys/pkg/utils"
)

type TripFilter string

const (
	TripFilterAll      TripFilter = "all"
	TripFilterUpcoming TripFilter = "upcoming"
	TripFilterPast     TripFilter = "past"
	TripFilterShared   TripFilter = "shared"
)

// ParseTripFilter maps a query value to a filter. The empty string means all.
func ParseTripFilter(s string) (TripFilter, error) {
	switch TripFilter(s) {
	case "", TripFilterAll:
		return TripFilterAll, nil
	case TripFilterUpcoming, TripFilterPast, TripFilterShared:
		return TripFilter(s), nil
	}
	return "", fmt.Errorf("%w: %q", utils.ErrInvalidFilter, s)
}

// Matches reports whether t belongs to the view. Active trips are neither
// upcoming nor past.
func (f TripFilter) Matches(t db_models.Trip) bool {
	switch f {
	case TripFilterUpcoming:
		return t.Status == db_models.TripStatusUpcoming || t.Status == db_models.TripStatusPlanning
	case TripFilterPast:
		return t.Status == db_models.TripStatusCompleted
	case TripFilterShared:
		return t.IsShared()
	default:
		return true
	}
}

func FilterTrips(trips []db_models.Trip, f TripFilter) []db_models.Trip {
	out := make([]db_models.Trip, 0, len(trips))
	for _, t := range trips {
		if f.Matches(t) {
			out = append(out, t.Clone())
		}
	}
	return out
}

type TripTabCounts struct {
	All      int `json:"all"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
	Shared   int `json:"shared"`
}

func CountTripTabs(trips []db_models.Trip) TripTabCounts {
	counts := TripTabCounts{All: len(trips)}
	for _, t := range trips {
		if TripFilterUpcoming.Matches(t) {
			counts.Upcoming++
		}
		if TripFilterPast.Matches(t) {
			counts.Past++
		}
		if TripFilterShared.Matches(t) {
			counts.Shared++
		}
	}
	return counts
}

type datedTrip struct {
	trip  db_models.Trip
	start time.Time
	ok    bool
}

// SortTripsByStartDate orders trips by start date, oldest first. The sort
// is stable; trips whose start date cannot be parsed keep their relative
// order after every dated trip.
func SortTripsByStartDate(trips []db_models.Trip) []db_models.Trip {
	keyed := make([]datedTrip, len(trips))
	for i, t := range trips {
		start, err := utils.ParseCalendarDate(t.StartDate)
		keyed[i] = datedTrip{trip: t, start: start, ok: err == nil}
	}

	slices.SortStableFunc(keyed, func(a, b datedTrip) int {
		switch {
		case a.ok && b.ok:
			return a.start.Compare(b.start)
		case a.ok:
			return -1
		case b.ok:
			return 1
		}
		return 0
	})

	out := make([]db_models.Trip, len(keyed))
	for i, k := range keyed {
		out[i] = k.trip.Clone()
	}
	return out
}

type MonthGroup struct {
	Label string           `json:"label"`
	Trips []db_models.Trip `json:"trips"`
}

// GroupTripsByMonth buckets trips under a "January 2006" label taken from
// the start date. Labels appear in the order first seen, so sorted input
// gives chronological groups. Trips with an unparseable start date are
// left out.
func GroupTripsByMonth(trips []db_models.Trip) []MonthGroup {
	groups := make([]MonthGroup, 0)
	index := make(map[string]int)
	for _, t := range trips {
		start, err := utils.ParseCalendarDate(t.StartDate)
		if err != nil {
			continue
		}
		label := utils.FormatMonthYear(start)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, MonthGroup{Label: label})
		}
		groups[i].Trips = append(groups[i].Trips, t.Clone())
	}
	return groups
}
