package services

import (
	"context"

	"github.com/google/uuid"

	"pico/internal/models/db_models"
	"pico/internal/models/request_models"
	"pico/internal/repositories"
	"pico/pkg/utils"
)

type WithdrawalServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateWithdrawalRequest) (*db_models.Withdrawal, error)
	ListAll(ctx context.Context) ([]db_models.Withdrawal, error)
	Resolve(ctx context.Context, withdrawID string) (*db_models.Withdrawal, error)
}

type WithdrawalService struct {
	withdrawalRepo repositories.WithdrawalRepository
}

func NewWithdrawalService(withdrawalRepo repositories.WithdrawalRepository) WithdrawalServiceInterface {
	return &WithdrawalService{withdrawalRepo: withdrawalRepo}
}

func (s *WithdrawalService) Create(ctx context.Context, req request_models.CreateWithdrawalRequest) (*db_models.Withdrawal, error) {
	withdrawal := &db_models.Withdrawal{
		WorkerEmail:   req.WorkerEmail,
		WorkerName:    req.WorkerName,
		Coin:          req.Coin,
		PaymentSystem: req.PaymentSystem,
		AccountNumber: req.AccountNumber,
	}

	if err := s.withdrawalRepo.Insert(ctx, withdrawal); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return withdrawal, nil
}

func (s *WithdrawalService) ListAll(ctx context.Context) ([]db_models.Withdrawal, error) {
	withdrawals, err := s.withdrawalRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return withdrawals, nil
}

func (s *WithdrawalService) Resolve(ctx context.Context, withdrawID string) (*db_models.Withdrawal, error) {
	id, err := uuid.Parse(withdrawID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}
	return s.withdrawalRepo.ResolveWithDebit(ctx, id)
}
