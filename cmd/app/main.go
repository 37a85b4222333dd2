package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"journeys/cmd/fx/catalog_fx"
	"journeys/cmd/fx/config_fx"
	"journeys/cmd/fx/controllers_fx"
	"journeys/cmd/fx/db_fx"
	"journeys/cmd/fx/memcache_fx"
	"journeys/cmd/fx/social_fx"
	"journeys/cmd/fx/store_fx"
	"journeys/cmd/fx/trips_fx"
	"journeys/internal/api"
	"journeys/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		appOptions(),
	)
	app.Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		store_fx.Module,
		catalog_fx.Module,
		trips_fx.Module,
		social_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func ProvideRouter(cfg *config.Config, p api.RouterParams) *gin.Engine {
	gin.SetMode(cfg.HTTP.GinMode)
	return api.NewRouter(p)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
