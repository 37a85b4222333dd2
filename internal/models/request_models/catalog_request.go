package request_models

type CitySearchRequest struct {
	Query  string `form:"q"`
	Season *int   `form:"season" binding:"omitempty,min=0,max=3"`
}

type PlaceSearchRequest struct {
	Query  string `form:"q"`
	CityID string `form:"city_id"`
}

type ConversationSearchRequest struct {
	Query string `form:"q"`
}
