package services

import (
	"context"

	"github.com/google/uuid"

	"pico/internal/models/db_models"
	"pico/internal/models/request_models"
	"pico/internal/repositories"
	"pico/pkg/utils"
)

// submissionPageSize is the fixed page size of the paginated worker
// submission listing.
const submissionPageSize = 2

type SubmissionServiceInterface interface {
	Create(ctx context.Context, req request_models.CreateSubmissionRequest) (*db_models.Submission, error)
	ListByWorker(ctx context.Context, email string) ([]db_models.Submission, error)
	ListByWorkerPaged(ctx context.Context, email string, page int) ([]db_models.Submission, error)
	CountByWorker(ctx context.Context, email string) (int64, error)
	ListByCreator(ctx context.Context, email string) ([]db_models.Submission, error)
	Approve(ctx context.Context, id string) (*db_models.Submission, error)
	Reject(ctx context.Context, id string) (*db_models.Submission, error)
}

type SubmissionService struct {
	submissionRepo repositories.SubmissionRepository
}

func NewSubmissionService(submissionRepo repositories.SubmissionRepository) SubmissionServiceInterface {
	return &SubmissionService{submissionRepo: submissionRepo}
}

func (s *SubmissionService) Create(ctx context.Context, req request_models.CreateSubmissionRequest) (*db_models.Submission, error) {
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		return nil, utils.ErrInvalidID
	}

	sub := &db_models.Submission{
		TaskID:      taskID,
		WorkerEmail: req.WorkerEmail,
		WorkerName:  req.WorkerName,
		Detail:      req.Detail,
		Status:      db_models.SubmissionPending,
	}

	if err := s.submissionRepo.CreateWithDecrement(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubmissionService) ListByWorker(ctx context.Context, email string) ([]db_models.Submission, error) {
	subs, err := s.submissionRepo.FindByWorker(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}

func (s *SubmissionService) ListByWorkerPaged(ctx context.Context, email string, page int) ([]db_models.Submission, error) {
	if page < 0 {
		return nil, utils.ErrInvalidPage
	}

	subs, err := s.submissionRepo.FindByWorkerPaged(ctx, email, page*submissionPageSize, submissionPageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}

func (s *SubmissionService) CountByWorker(ctx context.Context, email string) (int64, error) {
	n, err := s.submissionRepo.CountByWorker(ctx, email)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return n, nil
}

func (s *SubmissionService) ListByCreator(ctx context.Context, email string) ([]db_models.Submission, error) {
	subs, err := s.submissionRepo.FindByCreator(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return subs, nil
}

func (s *SubmissionService) Approve(ctx context.Context, id string) (*db_models.Submission, error) {
	subID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidID
	}
	return s.submissionRepo.ApproveWithCredit(ctx, subID)
}

func (s *SubmissionService) Reject(ctx context.Context, id string) (*db_models.Submission, error) {
	subID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidID
	}
	return s.submissionRepo.Reject(ctx, subID)
}
