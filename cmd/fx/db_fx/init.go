package db_fx

import (
	"go.uber.org/fx"

	"journeys/internal/config"
	"journeys/internal/repositories"
	"journeys/internal/seed"
)

var Module = fx.Provide(
	provideMockDB,
	repositories.NewCityRepository,
	repositories.NewPlaceRepository,
	repositories.NewTripRepository,
	repositories.NewItineraryRepository,
	repositories.NewUserRepository,
	repositories.NewConversationRepository,
	repositories.NewActivityRepository,
)

func provideMockDB(cfg *config.Config) *repositories.MockDB {
	return repositories.NewMockDB(seed.Default(), cfg.Mock.Latency)
}
