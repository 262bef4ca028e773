package services

import (
	"context"

	"github.com/google/uuid"

	"pico/internal/models/db_models"
	"pico/internal/models/request_models"
	"pico/internal/repositories"
	"pico/pkg/utils"
)

type TaskServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateTaskRequest) (*db_models.Task, error)
	GetByID(ctx context.Context, id string) (*db_models.Task, error)
	ListAll(ctx context.Context) ([]db_models.Task, error)
	ListByCreator(ctx context.Context, email string) ([]db_models.Task, error)
	ListAvailable(ctx context.Context) ([]db_models.Task, error)
	Update(ctx context.Context, id string, req request_models.UpdateTaskRequest) error
	Delete(ctx context.Context, id string) (*db_models.Task, error)
}

type TaskService struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) TaskServiceInterface {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) Create(ctx context.Context, req request_models.CreateTaskRequest) (*db_models.Task, error) {
	task := &db_models.Task{
		CreatorEmail:   req.CreatorEmail,
		Title:          req.Title,
		Detail:         req.Detail,
		Image:          req.Image,
		PayableAmount:  req.PayableAmount,
		TaskQuantity:   req.TaskQuantity,
		CompletionDate: req.CompletionDate,
		Metadata:       req.Metadata,
	}

	if err := s.taskRepo.CreateWithDebit(ctx, task); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return task, nil
}

func (s *TaskService) GetByID(ctx context.Context, id string) (*db_models.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if task == nil {
		return nil, utils.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) ListAll(ctx context.Context) ([]db_models.Task, error) {
	tasks, err := s.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tasks, nil
}

func (s *TaskService) ListByCreator(ctx context.Context, email string) ([]db_models.Task, error) {
	tasks, err := s.taskRepo.FindByCreator(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tasks, nil
}

func (s *TaskService) ListAvailable(ctx context.Context) ([]db_models.Task, error) {
	tasks, err := s.taskRepo.FindAvailable(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return tasks, nil
}

func (s *TaskService) Update(ctx context.Context, id string, req request_models.UpdateTaskRequest) error {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Detail != nil {
		fields["detail"] = *req.Detail
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.CompletionDate != nil {
		fields["completion_date"] = *req.CompletionDate
	}
	if req.Metadata != nil {
		fields["metadata"] = *req.Metadata
	}
	if len(fields) == 0 {
		return utils.ErrNothingToUpdate
	}

	return s.taskRepo.UpdateFields(ctx, taskID, fields)
}

func (s *TaskService) Delete(ctx context.Context, id string) (*db_models.Task, error) {
	taskID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidID
	}
	return s.taskRepo.DeleteWithRefund(ctx, taskID)
}
