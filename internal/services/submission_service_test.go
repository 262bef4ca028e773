package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pico/internal/models/db_models"
	"pico/internal/models/request_models"
	"pico/pkg/utils"
)

type stubSubmissionRepo struct {
	created    []*db_models.Submission
	pagedCalls [][2]int
	createErr  error
}

func (s *stubSubmissionRepo) CreateWithDecrement(_ context.Context, sub *db_models.Submission) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, sub)
	return nil
}

func (s *stubSubmissionRepo) FindByID(_ context.Context, _ uuid.UUID) (*db_models.Submission, error) {
	return nil, nil
}

func (s *stubSubmissionRepo) FindByWorker(_ context.Context, _ string) ([]db_models.Submission, error) {
	return nil, nil
}

func (s *stubSubmissionRepo) FindByWorkerPaged(_ context.Context, _ string, offset, limit int) ([]db_models.Submission, error) {
	s.pagedCalls = append(s.pagedCalls, [2]int{offset, limit})
	return nil, nil
}

func (s *stubSubmissionRepo) CountByWorker(_ context.Context, _ string) (int64, error) {
	return 7, nil
}

func (s *stubSubmissionRepo) FindByCreator(_ context.Context, _ string) ([]db_models.Submission, error) {
	return nil, nil
}

func (s *stubSubmissionRepo) ApproveWithCredit(_ context.Context, _ uuid.UUID) (*db_models.Submission, error) {
	return nil, utils.ErrSubmissionResolved
}

func (s *stubSubmissionRepo) Reject(_ context.Context, _ uuid.UUID) (*db_models.Submission, error) {
	return nil, utils.ErrSubmissionNotFound
}

func TestSubmissionCreateStartsPending(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewSubmissionService(repo)

	taskID := uuid.New()
	sub, err := svc.Create(context.Background(), request_models.CreateSubmissionRequest{
		TaskID:      taskID.String(),
		WorkerEmail: "worker@pico.io",
		WorkerName:  "Worker",
		Detail:      "done",
	})
	require.NoError(t, err)
	assert.Equal(t, db_models.SubmissionPending, sub.Status)
	assert.Equal(t, taskID, sub.TaskID)
	require.Len(t, repo.created, 1)
}

func TestSubmissionCreateInvalidTaskID(t *testing.T) {
	svc := NewSubmissionService(&stubSubmissionRepo{})

	_, err := svc.Create(context.Background(), request_models.CreateSubmissionRequest{
		TaskID:      "nope",
		WorkerEmail: "worker@pico.io",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidID)
}

func TestSubmissionCreatePassesTaskNotFound(t *testing.T) {
	repo := &stubSubmissionRepo{createErr: utils.ErrTaskNotFound}
	svc := NewSubmissionService(repo)

	_, err := svc.Create(context.Background(), request_models.CreateSubmissionRequest{
		TaskID:      uuid.New().String(),
		WorkerEmail: "worker@pico.io",
	})
	assert.ErrorIs(t, err, utils.ErrTaskNotFound)
}

func TestListByWorkerPagedOffsets(t *testing.T) {
	repo := &stubSubmissionRepo{}
	svc := NewSubmissionService(repo)

	_, err := svc.ListByWorkerPaged(context.Background(), "worker@pico.io", 0)
	require.NoError(t, err)
	_, err = svc.ListByWorkerPaged(context.Background(), "worker@pico.io", 3)
	require.NoError(t, err)

	require.Len(t, repo.pagedCalls, 2)
	assert.Equal(t, [2]int{0, submissionPageSize}, repo.pagedCalls[0])
	assert.Equal(t, [2]int{3 * submissionPageSize, submissionPageSize}, repo.pagedCalls[1])
}

func TestListByWorkerPagedNegativePage(t *testing.T) {
	svc := NewSubmissionService(&stubSubmissionRepo{})

	_, err := svc.ListByWorkerPaged(context.Background(), "worker@pico.io", -1)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}

func TestApproveRejectInvalidID(t *testing.T) {
	svc := NewSubmissionService(&stubSubmissionRepo{})

	_, err := svc.Approve(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrInvalidID)

	_, err = svc.Reject(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrInvalidID)
}

func TestApprovePassesResolvedError(t *testing.T) {
	svc := NewSubmissionService(&stubSubmissionRepo{})

	_, err := svc.Approve(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrSubmissionResolved)
}
