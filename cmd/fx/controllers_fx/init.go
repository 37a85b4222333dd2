package controllers_fx

import (
	"go.uber.org/fx"

	"journeys/internal/api/controllers"
	"journeys/internal/config"
)

var Module = fx.Options(
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewMapController),
	fx.Provide(controllers.NewStoreController),
	fx.Provide(controllers.NewSocialController),
	fx.Provide(provideHealthController))

func provideHealthController(cfg *config.Config) *controllers.HealthController {
	return controllers.NewHealthController(cfg.App.Name)
}
