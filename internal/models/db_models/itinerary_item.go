package db_models

// ItineraryItem is one scheduled stop of a trip. The owning trip is tracked
// by whoever stores the item, not by the item itself.
type ItineraryItem struct {
	ID        string `json:"id"`
	PlaceID   string `json:"place_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"` // minutes
	Notes     string `json:"notes,omitempty"`
}

func CloneItems(items []ItineraryItem) []ItineraryItem {
	if items == nil {
		return nil
	}
	out := make([]ItineraryItem, len(items))
	copy(out, items)
	return out
}
