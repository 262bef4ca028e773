package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pico/internal/models/db_models"
	"pico/pkg/utils"
)

type WithdrawalRepository interface {
	Insert(ctx context.Context, w *db_models.Withdrawal) error
	FindAll(ctx context.Context) ([]db_models.Withdrawal, error)
	// ResolveWithDebit deletes the request and debits the worker by the
	// stored coin amount in one transaction. The balance may go negative.
	// Resolving an id that no longer exists fails with
	// utils.ErrWithdrawalNotFound, so a request cannot be processed twice.
	ResolveWithDebit(ctx context.Context, id uuid.UUID) (*db_models.Withdrawal, error)
}

type withdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) WithdrawalRepository {
	return &withdrawalRepository{db: db}
}

func (w *withdrawalRepository) Insert(ctx context.Context, withdrawal *db_models.Withdrawal) error {
	return w.db.WithContext(ctx).Create(withdrawal).Error
}

func (w *withdrawalRepository) FindAll(ctx context.Context) ([]db_models.Withdrawal, error) {
	var withdrawals []db_models.Withdrawal
	err := w.db.WithContext(ctx).Order("created_at DESC").Find(&withdrawals).Error
	return withdrawals, err
}

func (w *withdrawalRepository) ResolveWithDebit(ctx context.Context, id uuid.UUID) (*db_models.Withdrawal, error) {
	var withdrawal db_models.Withdrawal

	err := w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&withdrawal, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrWithdrawalNotFound
			}
			return err
		}

		if err := tx.Delete(&db_models.Withdrawal{}, "id = ?", id).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.User{}).
			Where("email = ?", withdrawal.WorkerEmail).
			UpdateColumn("coin", gorm.Expr("coin - ?", withdrawal.Coin)).Error
	})
	if err != nil {
		return nil, err
	}

	return &withdrawal, nil
}
