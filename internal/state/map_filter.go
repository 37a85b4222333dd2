// Package state holds the client-side state containers the HTTP layer
// shares between requests.
package state

import (
	"slices"
	"sync"

	"journeys/internal/models/db_models"
)

type MapFilterSnapshot struct {
	SelectedPlaceID *string              `json:"selected_place_id"`
	ActiveFilters   []db_models.Category `json:"active_filters"`
}

// MapFilterState tracks the selected map pin and the active category
// chips.
type MapFilterState struct {
	mu       sync.RWMutex
	selected *string
	active   []db_models.Category
}

func NewMapFilterState() *MapFilterState {
	return &MapFilterState{active: []db_models.Category{}}
}

// SelectPlace sets the selected place. A nil id clears the selection.
func (s *MapFilterState) SelectPlace(placeID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if placeID == nil {
		s.selected = nil
		return
	}
	id := *placeID
	s.selected = &id
}

// ToggleFilter adds the category when absent and removes it when present.
// Categories stay in the order they were first switched on.
func (s *MapFilterState) ToggleFilter(c db_models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.Index(s.active, c); i >= 0 {
		s.active = slices.Delete(s.active, i, i+1)
		return
	}
	s.active = append(s.active, c)
}

func (s *MapFilterState) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = []db_models.Category{}
}

func (s *MapFilterState) Snapshot() MapFilterSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := MapFilterSnapshot{ActiveFilters: slices.Clone(s.active)}
	if s.selected != nil {
		id := *s.selected
		out.SelectedPlaceID = &id
	}
	return out
}
