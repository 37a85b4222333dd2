package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"journeys/internal/models/db_models"
)

func TestToggleFilter(t *testing.T) {
	s := NewMapFilterState()

	s.ToggleFilter(db_models.CategoryFood)
	s.ToggleFilter(db_models.CategoryMuseum)
	s.ToggleFilter(db_models.CategoryCafe)
	assert.Equal(t, []db_models.Category{db_models.CategoryFood, db_models.CategoryMuseum, db_models.CategoryCafe}, s.Snapshot().ActiveFilters)

	s.ToggleFilter(db_models.CategoryMuseum)
	assert.Equal(t, []db_models.Category{db_models.CategoryFood, db_models.CategoryCafe}, s.Snapshot().ActiveFilters)

	s.ClearFilters()
	assert.Empty(t, s.Snapshot().ActiveFilters)
	assert.NotNil(t, s.Snapshot().ActiveFilters)
}

func TestToggleTwiceRestores(t *testing.T) {
	s := NewMapFilterState()
	s.ToggleFilter(db_models.CategoryLandmark)
	before := s.Snapshot()

	s.ToggleFilter(db_models.CategoryNightlife)
	s.ToggleFilter(db_models.CategoryNightlife)
	assert.Equal(t, before, s.Snapshot())
}

func TestSelectPlace(t *testing.T) {
	s := NewMapFilterState()
	assert.Nil(t, s.Snapshot().SelectedPlaceID)

	id := "senso-ji"
	s.SelectPlace(&id)
	id = "mutated"
	snap := s.Snapshot()
	require.NotNil(t, snap.SelectedPlaceID)
	assert.Equal(t, "senso-ji", *snap.SelectedPlaceID)

	s.SelectPlace(nil)
	assert.Nil(t, s.Snapshot().SelectedPlaceID)
}

func TestSnapshotIsDetached(t *testing.T) {
	s := NewMapFilterState()
	s.ToggleFilter(db_models.CategoryFood)
	snap := s.Snapshot()
	snap.ActiveFilters[0] = db_models.CategoryTransit

	assert.Equal(t, []db_models.Category{db_models.CategoryFood}, s.Snapshot().ActiveFilters)
}

func TestMapFilterConcurrentToggles(t *testing.T) {
	s := NewMapFilterState()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.ToggleFilter(db_models.CategoryFood)
			_ = s.Snapshot()
		}()
	}
	wg.Wait()
	assert.Empty(t, s.Snapshot().ActiveFilters)
}
