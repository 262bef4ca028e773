package payment_fx

import (
	"os"
	"strconv"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"pico/internal/api/controllers"
	"pico/internal/repositories"
	"pico/internal/services"
)

var Module = fx.Options(
	fx.Provide(repositories.NewPaymentRepository),
	fx.Provide(provideStripeConfig),
	fx.Provide(services.NewStripeIntentClient),
	fx.Provide(providePaymentService),
	fx.Provide(controllers.NewPaymentController),
)

func provideStripeConfig(logger *zap.Logger) services.StripeConfig {
	var coinRate float64
	if raw := os.Getenv("COIN_RATE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Warn("malformed COIN_RATE, falling back to default rate",
				zap.String("value", raw), zap.Error(err))
		} else {
			coinRate = parsed
		}
	}

	return services.StripeConfig{
		SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:  "usd",
		CoinRate:  coinRate,
	}
}

func providePaymentService(repo repositories.PaymentRepository, intents services.IntentClient, cfg services.StripeConfig, logger *zap.Logger) services.PaymentServiceInterface {
	instance, err := services.NewPaymentService(repo, intents, cfg)
	if err != nil {
		logger.Fatal("initializing payment service", zap.Error(err))
	}
	return instance
}
