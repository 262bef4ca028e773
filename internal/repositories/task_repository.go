package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pico/internal/models/db_models"
	"pico/pkg/utils"
)

// availableQuantityFloor is the exclusive lower bound of the public task
// list: tasks with quantity at or below it are treated as exhausted.
const availableQuantityFloor = 1

type TaskRepository interface {
	// CreateWithDebit inserts the task and debits the creator's balance by
	// payableAmount*taskQuantity in one transaction. The debit has no floor
	// and is a no-op when the creator row does not exist.
	CreateWithDebit(ctx context.Context, task *db_models.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Task, error)
	FindAll(ctx context.Context) ([]db_models.Task, error)
	FindByCreator(ctx context.Context, email string) ([]db_models.Task, error)
	FindAvailable(ctx context.Context) ([]db_models.Task, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// DeleteWithRefund removes the task and credits the creator by the
	// current (possibly already decremented) quantity times payableAmount.
	DeleteWithRefund(ctx context.Context, id uuid.UUID) (*db_models.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (t *taskRepository) CreateWithDebit(ctx context.Context, task *db_models.Task) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}

		cost := task.PayableAmount * float64(task.TaskQuantity)
		return tx.Model(&db_models.User{}).
			Where("email = ?", task.CreatorEmail).
			UpdateColumn("coin", gorm.Expr("coin - ?", cost)).Error
	})
}

func (t *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Task, error) {
	var task db_models.Task
	err := t.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (t *taskRepository) FindAll(ctx context.Context) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := t.db.WithContext(ctx).Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

func (t *taskRepository) FindByCreator(ctx context.Context, email string) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := t.db.WithContext(ctx).
		Where("creator_email = ?", email).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (t *taskRepository) FindAvailable(ctx context.Context) ([]db_models.Task, error) {
	var tasks []db_models.Task
	err := t.db.WithContext(ctx).
		Where("task_quantity > ?", availableQuantityFloor).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

func (t *taskRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	res := t.db.WithContext(ctx).
		Model(&db_models.Task{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrTaskNotFound
	}
	return nil
}

func (t *taskRepository) DeleteWithRefund(ctx context.Context, id uuid.UUID) (*db_models.Task, error) {
	var task db_models.Task

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrTaskNotFound
			}
			return err
		}

		if err := tx.Delete(&db_models.Task{}, "id = ?", id).Error; err != nil {
			return err
		}

		// Refund uses the current quantity, not the quantity the task was
		// created with.
		refund := float64(task.TaskQuantity) * task.PayableAmount
		return tx.Model(&db_models.User{}).
			Where("email = ?", task.CreatorEmail).
			UpdateColumn("coin", gorm.Expr("coin + ?", refund)).Error
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}
