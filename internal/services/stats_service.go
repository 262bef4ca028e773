package services

import (
	"context"

	"pico/internal/models/response_models"
	"pico/internal/repositories"
	"pico/pkg/utils"
)

type StatsServiceInterface interface {
	AdminState(ctx context.Context) (*response_models.AdminState, error)
	CreatorState(ctx context.Context, email string) (*response_models.CreatorState, error)
	WorkerState(ctx context.Context, email string) (*response_models.WorkerState, error)
}

type StatsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsServiceInterface {
	return &StatsService{statsRepo: statsRepo}
}

func (s *StatsService) AdminState(ctx context.Context) (*response_models.AdminState, error) {
	totalUsers, err := s.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalCoins, err := s.statsRepo.SumUserCoins(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	paymentsMinor, err := s.statsRepo.SumPaymentsMinor(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AdminState{
		TotalUsers:    totalUsers,
		TotalCoins:    totalCoins,
		TotalPayments: float64(paymentsMinor) / 100,
	}, nil
}

func (s *StatsService) CreatorState(ctx context.Context, email string) (*response_models.CreatorState, error) {
	totalQuantity, err := s.statsRepo.SumTaskQuantityByCreator(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	paidMinor, err := s.statsRepo.SumPaymentsMinorByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreatorState{
		TotalTaskQuantity: totalQuantity,
		TotalPaid:         float64(paidMinor) / 100,
	}, nil
}

func (s *StatsService) WorkerState(ctx context.Context, email string) (*response_models.WorkerState, error) {
	// The count is scoped to the worker, not global.
	totalSubmissions, err := s.statsRepo.CountSubmissionsByWorker(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalEarnings, err := s.statsRepo.SumApprovedEarnings(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.WorkerState{
		TotalSubmissions: totalSubmissions,
		TotalEarnings:    totalEarnings,
	}, nil
}
