package repositories

import (
	"context"
	"slices"

	"journeys/internal/models/db_models"
	"journeys/internal/views"
)

type PlaceRepository interface {
	GetPlaces(ctx context.Context, cityID string) ([]db_models.Place, error)
	GetPlace(ctx context.Context, id string) (*db_models.Place, error)
	SearchPlaces(ctx context.Context, query, cityID string) ([]db_models.Place, error)
}

type placeRepository struct {
	db *MockDB
}

func NewPlaceRepository(db *MockDB) PlaceRepository {
	return &placeRepository{db: db}
}

// GetPlaces lists every place, or only the places of cityID when it is set.
func (r *placeRepository) GetPlaces(ctx context.Context, cityID string) ([]db_models.Place, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if cityID != "" {
		return views.PlacesInCity(r.db.places, cityID), nil
	}
	return slices.Clone(r.db.places), nil
}

func (r *placeRepository) GetPlace(ctx context.Context, id string) (*db_models.Place, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, p := range r.db.places {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *placeRepository) SearchPlaces(ctx context.Context, query, cityID string) ([]db_models.Place, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return views.SearchPlaces(r.db.places, query, cityID), nil
}
