package repositories

import (
	"context"

	"gorm.io/gorm"

	"pico/internal/models/db_models"
)

type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	SumUserCoins(ctx context.Context) (float64, error)
	SumPaymentsMinor(ctx context.Context) (int64, error)
	SumPaymentsMinorByEmail(ctx context.Context, email string) (int64, error)
	SumTaskQuantityByCreator(ctx context.Context, email string) (int64, error)
	CountSubmissionsByWorker(ctx context.Context, email string) (int64, error)
	SumApprovedEarnings(ctx context.Context, email string) (float64, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.User{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) SumUserCoins(ctx context.Context) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Select("COALESCE(SUM(coin), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *statsRepository) SumPaymentsMinor(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Select("COALESCE(SUM(amount_minor), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *statsRepository) SumPaymentsMinorByEmail(ctx context.Context, email string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Payment{}).
		Select("COALESCE(SUM(amount_minor), 0)").
		Where("email = ?", email).
		Scan(&sum).Error
	return sum, err
}

func (r *statsRepository) SumTaskQuantityByCreator(ctx context.Context, email string) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Task{}).
		Select("COALESCE(SUM(task_quantity), 0)").
		Where("creator_email = ?", email).
		Scan(&sum).Error
	return sum, err
}

func (r *statsRepository) CountSubmissionsByWorker(ctx context.Context, email string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Submission{}).
		Where("worker_email = ?", email).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) SumApprovedEarnings(ctx context.Context, email string) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).
		Model(&db_models.Submission{}).
		Select("COALESCE(SUM(payable_amount), 0)").
		Where("worker_email = ? AND status = ?", email, db_models.SubmissionApproved).
		Scan(&sum).Error
	return sum, err
}
