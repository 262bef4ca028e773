package task_fx

import (
	"go.uber.org/fx"

	"pico/internal/api/controllers"
	"pico/internal/repositories"
	"pico/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewTaskRepository),
	fx.Provide(services.NewTaskService),
	fx.Provide(controllers.NewTaskController),
)
