package stats_fx

import (
	"go.uber.org/fx"

	"pico/internal/api/controllers"
	"pico/internal/repositories"
	"pico/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewStatsRepository),
	fx.Provide(services.NewStatsService),
	fx.Provide(controllers.NewStatsController),
)
