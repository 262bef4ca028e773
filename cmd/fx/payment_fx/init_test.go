package payment_fx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProvideStripeConfigParsesCoinRate(t *testing.T) {
	t.Setenv("COIN_RATE", "25")

	cfg := provideStripeConfig(zap.NewNop())
	assert.Equal(t, float64(25), cfg.CoinRate)
}

func TestProvideStripeConfigMalformedCoinRate(t *testing.T) {
	t.Setenv("COIN_RATE", "ten")

	// Zero here means the service applies its default rate.
	cfg := provideStripeConfig(zap.NewNop())
	assert.Equal(t, float64(0), cfg.CoinRate)
}

func TestProvideStripeConfigUnsetCoinRate(t *testing.T) {
	t.Setenv("COIN_RATE", "")

	cfg := provideStripeConfig(zap.NewNop())
	assert.Equal(t, float64(0), cfg.CoinRate)
}
