package user_fx

import (
	"go.uber.org/fx"

	"pico/internal/api/controllers"
	"pico/internal/repositories"
	"pico/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewUserRepository),
	fx.Provide(services.NewUserService),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewAuthController),
)
