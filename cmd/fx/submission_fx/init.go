package submission_fx

import (
	"go.uber.org/fx"

	"pico/internal/api/controllers"
	"pico/internal/repositories"
	"pico/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewSubmissionRepository),
	fx.Provide(services.NewSubmissionService),
	fx.Provide(controllers.NewSubmissionController),
)
