package repositories

import (
	"context"

	"github.com/google/uuid"

	"journeys/internal/models/db_models"
	"journeys/pkg/utils"
)

type ItineraryRepository interface {
	GetItinerary(ctx context.Context, tripID string) ([]db_models.ItineraryItem, error)
	AddItineraryItem(ctx context.Context, tripID string, item db_models.ItineraryItem) (*db_models.ItineraryItem, error)
	// FindItineraryItem returns the item and the id of the trip owning it.
	FindItineraryItem(ctx context.Context, itemID string) (*db_models.ItineraryItem, string, error)
	UpdateItineraryItem(ctx context.Context, itemID string, apply func(db_models.ItineraryItem) db_models.ItineraryItem) (*db_models.ItineraryItem, error)
	DeleteItineraryItem(ctx context.Context, itemID string) error
}

type itineraryRepository struct {
	db *MockDB
}

func NewItineraryRepository(db *MockDB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// GetItinerary returns the items of a trip in stored order. A trip without
// items yields an empty slice.
func (r *itineraryRepository) GetItinerary(ctx context.Context, tripID string) ([]db_models.ItineraryItem, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	items := db_models.CloneItems(r.db.itineraries[tripID])
	if items == nil {
		items = []db_models.ItineraryItem{}
	}
	return items, nil
}

func (r *itineraryRepository) AddItineraryItem(ctx context.Context, tripID string, item db_models.ItineraryItem) (*db_models.ItineraryItem, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	item.ID = "item-" + uuid.NewString()

	r.db.mu.Lock()
	r.db.itineraries[tripID] = append(r.db.itineraries[tripID], item)
	r.db.mu.Unlock()

	return &item, nil
}

func (r *itineraryRepository) FindItineraryItem(ctx context.Context, itemID string) (*db_models.ItineraryItem, string, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, "", err
	}
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	tripID, i := r.locate(itemID)
	if i < 0 {
		return nil, "", nil
	}
	item := r.db.itineraries[tripID][i]
	return &item, tripID, nil
}

func (r *itineraryRepository) UpdateItineraryItem(ctx context.Context, itemID string, apply func(db_models.ItineraryItem) db_models.ItineraryItem) (*db_models.ItineraryItem, error) {
	if err := r.db.wait(ctx); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tripID, i := r.locate(itemID)
	if i < 0 {
		return nil, utils.ErrItineraryItemNotFound
	}
	updated := apply(r.db.itineraries[tripID][i])
	updated.ID = itemID
	r.db.itineraries[tripID][i] = updated
	return &updated, nil
}

// DeleteItineraryItem removes the item wherever it is. Deleting an id that
// does not exist is not an error.
func (r *itineraryRepository) DeleteItineraryItem(ctx context.Context, itemID string) error {
	if err := r.db.wait(ctx); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	tripID, i := r.locate(itemID)
	if i < 0 {
		return nil
	}
	items := r.db.itineraries[tripID]
	r.db.itineraries[tripID] = append(items[:i:i], items[i+1:]...)
	return nil
}

// locate must be called with the lock held.
func (r *itineraryRepository) locate(itemID string) (string, int) {
	for tripID, items := range r.db.itineraries {
		for i, it := range items {
			if it.ID == itemID {
				return tripID, i
			}
		}
	}
	return "", -1
}
