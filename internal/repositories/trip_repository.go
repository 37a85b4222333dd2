package repositories

import (
	"context"

	"github.com/google/uuid"

	"journeys/internal/models/db_models"
	"journeys/internal/views"
	"journeys/pkg/utils"
)

type TripRepository interface {
	GetTrips(ctx context.Context, filter views.TripFilter) ([]db_models.Trip, error)
	GetTrip(ctx context.Context, id string) (*db_models.Trip, error)
	CreateTrip(ctx context.Context, trip db_models.Trip) (*db_models.Trip, error)
	UpdateTrip(ctx context.Context, id string, apply func(db_models.Trip) db_models.Trip) (*db_models.Trip, error)
}

type tripRepository struct {
	db *MockDB
}

func NewTripRepository(db *MockDB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) GetTrips(ctx context.Context, filter views.TripFilter) ([]db_models.Trip, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return views.FilterTrips(r.db.trips, filter), nil
}

func (r *tripRepository) GetTrip(ctx context.Context, id string) (*db_models.Trip, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, t := range r.db.trips {
		if t.ID == id {
			out := t.Clone()
			return &out, nil
		}
	}
	return nil, nil
}

// CreateTrip assigns a fresh id and both timestamps, ignoring whatever the
// caller put there.
func (r *tripRepository) CreateTrip(ctx context.Context, trip db_models.Trip) (*db_models.Trip, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	now := r.db.Clock()
	created := trip.Clone()
	created.ID = "trip-" + uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now
	if created.Travelers == nil {
		created.Travelers = []db_models.User{}
	}

	r.db.mu.Lock()
	r.db.trips = append(r.db.trips, created.Clone())
	r.db.mu.Unlock()

	return &created, nil
}

// UpdateTrip merges the changes made by apply into the stored trip. The id
// and createdAt cannot be changed; updatedAt is refreshed. An unknown id
// returns utils.ErrTripNotFound and leaves the collection untouched.
func (r *tripRepository) UpdateTrip(ctx context.Context, id string, apply func(db_models.Trip) db_models.Trip) (*db_models.Trip, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, t := range r.db.trips {
		if t.ID != id {
			continue
		}
		updated := apply(t.Clone())
		updated.ID = t.ID
		updated.CreatedAt = t.CreatedAt
		updated.UpdatedAt = r.db.Clock()
		r.db.trips[i] = updated.Clone()
		return &updated, nil
	}
	return nil, utils.ErrTripNotFound
}
