package db_models

import "fmt"

type Category string

const (
	CategoryFood      Category = "food"
	CategoryMuseum    Category = "museum"
	CategoryCafe      Category = "cafe"
	CategoryLandmark  Category = "landmark"
	CategoryTransit   Category = "transit"
	CategoryNightlife Category = "nightlife"
	CategoryShopping  Category = "shopping"
)

// Categories lists every category in the order the map filter bar shows them.
var Categories = []Category{
	CategoryFood,
	CategoryMuseum,
	CategoryCafe,
	CategoryLandmark,
	CategoryTransit,
	CategoryNightlife,
	CategoryShopping,
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CityID      string   `json:"city_id"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	ImageURL    string   `json:"image_url,omitempty"`
}
