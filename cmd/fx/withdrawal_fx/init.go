package withdrawal_fx

import (
	"go.uber.org/fx"

	"pico/internal/api/controllers"
	"pico/internal/repositories"
	"pico/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewWithdrawalRepository),
	fx.Provide(services.NewWithdrawalService),
	fx.Provide(controllers.NewWithdrawalController),
)
