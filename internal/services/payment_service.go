package services

import (
	"context"
	"errors"
	"math"

	"pico/internal/models/db_models"
	"pico/internal/repositories"
	"pico/pkg/utils"
)

type StripeConfig struct {
	SecretKey string
	Currency  string  // ISO 4217, e.g. "usd"
	CoinRate  float64 // coins granted per major currency unit
}

// IntentResult is the narrow view of a payment intent the service needs.
type IntentResult struct {
	ID           string
	ClientSecret string
	AmountMinor  int64
	Confirmed    bool
}

// IntentClient is the boundary to the external payment processor.
type IntentClient interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*IntentResult, error)
	GetIntent(ctx context.Context, id string) (*IntentResult, error)
}

type PaymentServiceInterface interface {
	// CreateIntent opens a payment intent for price major units and returns
	// its client secret.
	CreateIntent(ctx context.Context, price float64) (string, error)
	// Record verifies the intent with the processor, derives the purchased
	// coins from the confirmed amount and credits the user. The client never
	// supplies the coin amount.
	Record(ctx context.Context, email, intentID string) (*db_models.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]db_models.Payment, error)
}

type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	intents     IntentClient
	cfg         StripeConfig
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, intents IntentClient, cfg StripeConfig) (PaymentServiceInterface, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("missing Stripe secret key")
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	if cfg.CoinRate <= 0 {
		cfg.CoinRate = 10
	}

	return &PaymentService{
		paymentRepo: paymentRepo,
		intents:     intents,
		cfg:         cfg,
	}, nil
}

func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amountMinor := int64(math.Round(price * 100))

	intent, err := s.intents.CreateIntent(ctx, amountMinor, s.cfg.Currency)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

func (s *PaymentService) Record(ctx context.Context, email, intentID string) (*db_models.Payment, error) {
	intent, err := s.intents.GetIntent(ctx, intentID)
	if err != nil {
		return nil, utils.ErrIntentNotFound
	}
	if !intent.Confirmed {
		return nil, utils.ErrIntentNotConfirmed
	}

	payment := &db_models.Payment{
		Email:         email,
		AmountMinor:   intent.AmountMinor,
		PurchasedCoin: float64(intent.AmountMinor) / 100 * s.cfg.CoinRate,
		IntentID:      intent.ID,
	}

	if err := s.paymentRepo.CreateWithCredit(ctx, payment); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return payment, nil
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]db_models.Payment, error) {
	payments, err := s.paymentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return payments, nil
}
