package store_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"journeys/internal/config"
	"journeys/internal/infra"
	"journeys/internal/repositories"
	"journeys/internal/state"
	mem "journeys/pkg/memcache"
)

var Module = fx.Provide(
	provideSnapshotRepository,
	provideTripsStore,
	state.NewMapFilterState,
)

func provideSnapshotRepository(lc fx.Lifecycle, cfg *config.Config, blobs mem.BlobStore, logger *zap.Logger) (repositories.SnapshotRepository, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := infra.NewRedisClient(context.Background(), infra.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(client.Close))
		logger.Info("trips store backend", zap.String("backend", "redis"), zap.String("addr", cfg.Redis.Addr))
		return repositories.NewRedisSnapshotRepository(client), nil

	case config.BackendPostgres:
		db, err := infra.InitPostgresql(cfg.Postgres.URL, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(func() { infra.ClosePostgresql(db, logger) }))
		logger.Info("trips store backend", zap.String("backend", "postgres"))
		return repositories.NewPostgresSnapshotRepository(db), nil

	case config.BackendMemory:
		logger.Info("trips store backend", zap.String("backend", "memory"))
		return repositories.NewMemorySnapshotRepository(blobs), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func provideTripsStore(lc fx.Lifecycle, backend repositories.SnapshotRepository, cfg *config.Config, logger *zap.Logger) *state.TripsStore {
	store := state.NewTripsStore(backend, cfg.Store.Key, logger.Named("store"))
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := store.Load(ctx); err != nil {
				// an unreadable snapshot starts the store empty
				logger.Warn("load trips store", zap.Error(err))
			}
			return nil
		},
	})
	return store
}
