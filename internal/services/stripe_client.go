package services

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// stripeIntentClient backs IntentClient with the Stripe payment intents API.
type stripeIntentClient struct{}

func NewStripeIntentClient(cfg StripeConfig) IntentClient {
	stripe.Key = cfg.SecretKey
	return &stripeIntentClient{}
}

func (s *stripeIntentClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (*IntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &IntentResult{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountMinor:  intent.Amount,
		Confirmed:    intent.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}

func (s *stripeIntentClient) GetIntent(ctx context.Context, id string) (*IntentResult, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(id, params)
	if err != nil {
		return nil, err
	}

	return &IntentResult{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		AmountMinor:  intent.Amount,
		Confirmed:    intent.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}
