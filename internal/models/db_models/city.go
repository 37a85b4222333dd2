package db_models

type City struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"image_url"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
}
