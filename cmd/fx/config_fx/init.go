package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"journeys/internal/config"
	"journeys/internal/infra"
	"journeys/internal/views"
)

var Module = fx.Provide(
	config.New,
	provideLogger,
	views.DefaultSeasonTable,
)

func provideLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := infra.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("app", cfg.App.Name))
	zap.ReplaceGlobals(logger)

	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}
