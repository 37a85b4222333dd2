package views

import (
	"slices"
	"strings"

	"journeys/internal/models/db_models"
)

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// SearchPlaces matches query against name or description, ignoring case.
// An empty query matches every place. A non-empty cityID keeps only places
// in that city.
func SearchPlaces(places []db_models.Place, query, cityID string) []db_models.Place {
	out := make([]db_models.Place, 0, len(places))
	for _, p := range places {
		if cityID != "" && p.CityID != cityID {
			continue
		}
		if containsFold(p.Name, query) || containsFold(p.Description, query) {
			out = append(out, p)
		}
	}
	return out
}

func PlacesInCity(places []db_models.Place, cityID string) []db_models.Place {
	out := make([]db_models.Place, 0)
	for _, p := range places {
		if p.CityID == cityID {
			out = append(out, p)
		}
	}
	return out
}

// FilterCities keeps cities whose name, country or any tag contains query
// and, when season is set, that the season table lists for that season.
func FilterCities(cities []db_models.City, query string, season *Season, table SeasonTable) []db_models.City {
	out := make([]db_models.City, 0, len(cities))
	for _, c := range cities {
		if !cityMatchesQuery(c, query) {
			continue
		}
		if season != nil && !table.Includes(*season, c.ID) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func cityMatchesQuery(c db_models.City, query string) bool {
	if query == "" || containsFold(c.Name, query) || containsFold(c.Country, query) {
		return true
	}
	return slices.ContainsFunc(c.Tags, func(tag string) bool {
		return containsFold(tag, query)
	})
}

// FilterPlacesByCategories keeps places in one of the active categories.
// No active category means no filtering at all.
func FilterPlacesByCategories(places []db_models.Place, active []db_models.Category) []db_models.Place {
	out := make([]db_models.Place, 0, len(places))
	for _, p := range places {
		if len(active) == 0 || slices.Contains(active, p.Category) {
			out = append(out, p)
		}
	}
	return out
}
