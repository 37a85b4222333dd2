package repositories

import (
	"context"
	"slices"

	"journeys/internal/models/db_models"
)

type CityRepository interface {
	GetCities(ctx context.Context) ([]db_models.City, error)
	GetCity(ctx context.Context, id string) (*db_models.City, error)
}

type cityRepository struct {
	db *MockDB
}

func NewCityRepository(db *MockDB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) GetCities(ctx context.Context) ([]db_models.City, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]db_models.City, len(r.db.cities))
	for i, c := range r.db.cities {
		c.Tags = slices.Clone(c.Tags)
		out[i] = c
	}
	return out, nil
}

// GetCity returns nil without error when no city has the id.
func (r *cityRepository) GetCity(ctx context.Context, id string) (*db_models.City, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, c := range r.db.cities {
		if c.ID == id {
			c.Tags = slices.Clone(c.Tags)
			return &c, nil
		}
	}
	return nil, nil
}
