package trips_fx

import (
	"go.uber.org/fx"

	"journeys/internal/services"
)

var Module = fx.Provide(
	services.NewTripService,
	services.NewItineraryService,
)
