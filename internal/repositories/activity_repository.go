package repositories

import (
	"context"
	"slices"

	"journeys/internal/models/db_models"
)

type ActivityRepository interface {
	// GetActivities returns the feed newest first.
	GetActivities(ctx context.Context) ([]db_models.Activity, error)
}

type activityRepository struct {
	db *MockDB
}

func NewActivityRepository(db *MockDB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetActivities(ctx context.Context) ([]db_models.Activity, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := slices.Clone(r.db.activities)
	if out == nil {
		out = []db_models.Activity{}
	}
	slices.SortStableFunc(out, func(a, b db_models.Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out, nil
}
