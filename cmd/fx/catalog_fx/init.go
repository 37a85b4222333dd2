package catalog_fx

import (
	"go.uber.org/fx"

	"journeys/internal/services"
)

var Module = fx.Provide(services.NewCatalogService)
