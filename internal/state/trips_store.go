package state

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"journeys/internal/models/db_models"
	"journeys/internal/repositories"
	"journeys/pkg/utils"
)

const DefaultStoreKey = "trip-threads-trips"

// TripsSnapshot is the persisted layout of the store.
type TripsSnapshot struct {
	Trips          []db_models.Trip                     `json:"trips"`
	ItineraryItems map[string][]db_models.ItineraryItem `json:"itinerary_items"`
	CurrentTripID  *string                              `json:"current_trip_id"`
}

func emptySnapshot() TripsSnapshot {
	return TripsSnapshot{
		Trips:          []db_models.Trip{},
		ItineraryItems: map[string][]db_models.ItineraryItem{},
	}
}

func (s TripsSnapshot) clone() TripsSnapshot {
	out := TripsSnapshot{
		Trips:          db_models.CloneTrips(s.Trips),
		ItineraryItems: make(map[string][]db_models.ItineraryItem, len(s.ItineraryItems)),
	}
	if out.Trips == nil {
		out.Trips = []db_models.Trip{}
	}
	for k, v := range s.ItineraryItems {
		out.ItineraryItems[k] = db_models.CloneItems(v)
	}
	if s.CurrentTripID != nil {
		id := *s.CurrentTripID
		out.CurrentTripID = &id
	}
	return out
}

// TripsStore is the client's persisted trip cache. It loads once from the
// backend and writes the whole snapshot back after every mutation. A
// failed write is logged and the in-memory state is kept.
type TripsStore struct {
	mu      sync.RWMutex
	state   TripsSnapshot
	backend repositories.SnapshotRepository
	key     string
	logger  *zap.Logger
}

func NewTripsStore(backend repositories.SnapshotRepository, key string, logger *zap.Logger) *TripsStore {
	if key == "" {
		key = DefaultStoreKey
	}
	return &TripsStore{
		state:   emptySnapshot(),
		backend: backend,
		key:     key,
		logger:  logger,
	}
}

// Load replaces the in-memory state with the persisted snapshot, if any.
func (s *TripsStore) Load(ctx context.Context) error {
	blob, err := s.backend.Load(ctx, s.key)
	if err != nil {
		return err
	}
	if blob == nil {
		return nil
	}

	loaded := emptySnapshot()
	if err := json.Unmarshal(blob, &loaded); err != nil {
		return fmt.Errorf("%w: decode %s: %v", utils.ErrStorageError, s.key, err)
	}

	s.mu.Lock()
	s.state = loaded.clone()
	s.mu.Unlock()

	s.logger.Info("trips store loaded",
		zap.String("key", s.key),
		zap.Int("trips", len(loaded.Trips)))
	return nil
}

func (s *TripsStore) Snapshot() TripsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *TripsStore) SetTrips(ctx context.Context, trips []db_models.Trip) TripsSnapshot {
	return s.mutate(ctx, func(st *TripsSnapshot) error {
		st.Trips = db_models.CloneTrips(trips)
		if st.Trips == nil {
			st.Trips = []db_models.Trip{}
		}
		return nil
	})
}

func (s *TripsStore) AddTrip(ctx context.Context, trip db_models.Trip) TripsSnapshot {
	return s.mutate(ctx, func(st *TripsSnapshot) error {
		st.Trips = append(st.Trips, trip.Clone())
		return nil
	})
}

// SetCurrentTrip records the trip being viewed. Nil clears it.
func (s *TripsStore) SetCurrentTrip(ctx context.Context, tripID *string) TripsSnapshot {
	return s.mutate(ctx, func(st *TripsSnapshot) error {
		st.CurrentTripID = nil
		if tripID != nil {
			id := *tripID
			st.CurrentTripID = &id
		}
		return nil
	})
}

func (s *TripsStore) SetItinerary(ctx context.Context, tripID string, items []db_models.ItineraryItem) TripsSnapshot {
	return s.mutate(ctx, func(st *TripsSnapshot) error {
		st.ItineraryItems[tripID] = db_models.CloneItems(items)
		if st.ItineraryItems[tripID] == nil {
			st.ItineraryItems[tripID] = []db_models.ItineraryItem{}
		}
		return nil
	})
}

func (s *TripsStore) AddItineraryItem(ctx context.Context, tripID string, item db_models.ItineraryItem) TripsSnapshot {
	return s.mutate(ctx, func(st *TripsSnapshot) error {
		st.ItineraryItems[tripID] = append(st.ItineraryItems[tripID], item)
		return nil
	})
}

// UpdateItineraryItem merges apply's result into the item. The item id is
// kept.
func (s *TripsStore) UpdateItineraryItem(ctx context.Context, tripID, itemID string, apply func(db_models.ItineraryItem) db_models.ItineraryItem) (TripsSnapshot, error) {
	var snap TripsSnapshot
	err := s.mutateErr(ctx, func(st *TripsSnapshot) error {
		items := st.ItineraryItems[tripID]
		i := indexOfItem(items, itemID)
		if i < 0 {
			return utils.ErrItineraryItemNotFound
		}
		updated := apply(items[i])
		updated.ID = itemID
		items[i] = updated
		return nil
	}, &snap)
	return snap, err
}

func (s *TripsStore) RemoveItineraryItem(ctx context.Context, tripID, itemID string) (TripsSnapshot, error) {
	var snap TripsSnapshot
	err := s.mutateErr(ctx, func(st *TripsSnapshot) error {
		items := st.ItineraryItems[tripID]
		i := indexOfItem(items, itemID)
		if i < 0 {
			return utils.ErrItineraryItemNotFound
		}
		st.ItineraryItems[tripID] = slices.Delete(items, i, i+1)
		return nil
	}, &snap)
	return snap, err
}

func indexOfItem(items []db_models.ItineraryItem, id string) int {
	return slices.IndexFunc(items, func(it db_models.ItineraryItem) bool {
		return it.ID == id
	})
}

func (s *TripsStore) mutate(ctx context.Context, fn func(*TripsSnapshot) error) TripsSnapshot {
	var snap TripsSnapshot
	_ = s.mutateErr(ctx, fn, &snap)
	return snap
}

// mutateErr applies fn under the write lock and persists the result. fn
// returning an error leaves the state untouched and skips the write. The
// lock is held through the write so snapshots reach the backend in order.
func (s *TripsStore) mutateErr(ctx context.Context, fn func(*TripsSnapshot) error, out *TripsSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.clone()
	if err := fn(&next); err != nil {
		return err
	}
	s.state = next
	*out = next.clone()

	blob, err := json.Marshal(next)
	if err != nil {
		s.logger.Error("encode trips store", zap.Error(err))
		return nil
	}
	if err := s.backend.Save(ctx, s.key, blob); err != nil {
		s.logger.Warn("persist trips store failed",
			zap.String("key", s.key),
			zap.Error(err))
	}
	return nil
}
