package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pico/internal/models/db_models"
	"pico/pkg/utils"
)

type SubmissionRepository interface {
	// CreateWithDecrement snapshots task fields onto the submission, inserts
	// it and decrements the task's remaining quantity by one in a single
	// transaction. The quantity has no lower bound.
	CreateWithDecrement(ctx context.Context, sub *db_models.Submission) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Submission, error)
	FindByWorker(ctx context.Context, email string) ([]db_models.Submission, error)
	FindByWorkerPaged(ctx context.Context, email string, offset, limit int) ([]db_models.Submission, error)
	CountByWorker(ctx context.Context, email string) (int64, error)
	FindByCreator(ctx context.Context, email string) ([]db_models.Submission, error)
	// ApproveWithCredit marks a pending submission approved and credits the
	// worker by the submission's snapshotted payableAmount.
	ApproveWithCredit(ctx context.Context, id uuid.UUID) (*db_models.Submission, error)
	Reject(ctx context.Context, id uuid.UUID) (*db_models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (s *submissionRepository) CreateWithDecrement(ctx context.Context, sub *db_models.Submission) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task db_models.Task
		if err := tx.First(&task, "id = ?", sub.TaskID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTaskNotFound
			}
			return err
		}

		sub.TaskTitle = task.Title
		sub.CreatorEmail = task.CreatorEmail
		sub.PayableAmount = task.PayableAmount
		if sub.Status == "" {
			sub.Status = db_models.SubmissionPending
		}

		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		return tx.Model(&db_models.Task{}).
			Where("id = ?", sub.TaskID).
			UpdateColumn("task_quantity", gorm.Expr("task_quantity - 1")).Error
	})
}

func (s *submissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Submission, error) {
	var sub db_models.Submission
	err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *submissionRepository) FindByWorker(ctx context.Context, email string) ([]db_models.Submission, error) {
	var subs []db_models.Submission
	err := s.db.WithContext(ctx).
		Where("worker_email = ?", email).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *submissionRepository) FindByWorkerPaged(ctx context.Context, email string, offset, limit int) ([]db_models.Submission, error) {
	var subs []db_models.Submission
	err := s.db.WithContext(ctx).
		Where("worker_email = ?", email).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&subs).Error
	return subs, err
}

func (s *submissionRepository) CountByWorker(ctx context.Context, email string) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&db_models.Submission{}).
		Where("worker_email = ?", email).
		Count(&n).Error
	return n, err
}

func (s *submissionRepository) FindByCreator(ctx context.Context, email string) ([]db_models.Submission, error) {
	var subs []db_models.Submission
	err := s.db.WithContext(ctx).
		Where("creator_email = ?", email).
		Order("created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *submissionRepository) ApproveWithCredit(ctx context.Context, id uuid.UUID) (*db_models.Submission, error) {
	var sub db_models.Submission

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrSubmissionNotFound
			}
			return err
		}

		if sub.Status != db_models.SubmissionPending {
			return utils.ErrSubmissionResolved
		}

		if err := tx.Model(&sub).Update("status", db_models.SubmissionApproved).Error; err != nil {
			return err
		}

		// Credit comes from the snapshot taken at submission time, never
		// from the request body.
		return tx.Model(&db_models.User{}).
			Where("email = ?", sub.WorkerEmail).
			UpdateColumn("coin", gorm.Expr("coin + ?", sub.PayableAmount)).Error
	})
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

func (s *submissionRepository) Reject(ctx context.Context, id uuid.UUID) (*db_models.Submission, error) {
	var sub db_models.Submission

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrSubmissionNotFound
			}
			return err
		}

		if sub.Status != db_models.SubmissionPending {
			return utils.ErrSubmissionResolved
		}

		return tx.Model(&sub).Update("status", db_models.SubmissionRejected).Error
	})
	if err != nil {
		return nil, err
	}

	return &sub, nil
}
