package repositories

import (
	"context"
	"slices"

	"journeys/internal/models/db_models"
)

type UserRepository interface {
	GetUsers(ctx context.Context) ([]db_models.User, error)
	GetUser(ctx context.Context, id string) (*db_models.User, error)
}

type userRepository struct {
	db *MockDB
}

func NewUserRepository(db *MockDB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetUsers(ctx context.Context) ([]db_models.User, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return slices.Clone(r.db.users), nil
}

func (r *userRepository) GetUser(ctx context.Context, id string) (*db_models.User, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, u := range r.db.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}
