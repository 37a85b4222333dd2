package repositories

import (
	"context"
	"sync"
	"time"

	"journeys/internal/models/db_models"
	"journeys/internal/seed"
)

// MockDB is the in-memory backing store of the mock data service. Every
// repository call waits Latency before touching it, standing in for a
// network round trip.
type MockDB struct {
	mu sync.RWMutex

	cities        []db_models.City
	places        []db_models.Place
	users         []db_models.User
	trips         []db_models.Trip
	itineraries   map[string][]db_models.ItineraryItem
	conversations []db_models.Conversation
	messages      []db_models.Message
	activities    []db_models.Activity

	Latency time.Duration
	Clock   func() time.Time
}

func NewMockDB(data seed.Data, latency time.Duration) *MockDB {
	itineraries := make(map[string][]db_models.ItineraryItem, len(data.Itineraries))
	for tripID, items := range data.Itineraries {
		itineraries[tripID] = db_models.CloneItems(items)
	}
	return &MockDB{
		cities:        data.Cities,
		places:        data.Places,
		users:         data.Users,
		trips:         db_models.CloneTrips(data.Trips),
		itineraries:   itineraries,
		conversations: data.Conversations,
		messages:      data.Messages,
		activities:    data.Activities,
		Latency:       latency,
		Clock:         func() time.Time { return time.Now().UTC() },
	}
}

// wait simulates the round trip. It returns early with the context error
// when the caller gives up.
func (db *MockDB) wait(ctx context.Context) error {
	if db.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(db.Latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
