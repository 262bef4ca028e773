package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pico/internal/infra"
	"pico/internal/models/db_models"
	"pico/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role db_models.Role, coin float64) *db_models.User {
	t.Helper()

	user := &db_models.User{Email: email, Name: email, Role: role, Coin: coin}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedTask(t *testing.T, db *gorm.DB, creator string, payable float64, quantity int64) *db_models.Task {
	t.Helper()

	task := &db_models.Task{
		CreatorEmail:  creator,
		Title:         "watch and review",
		PayableAmount: payable,
		TaskQuantity:  quantity,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func userCoin(t *testing.T, db *gorm.DB, email string) float64 {
	t.Helper()

	var user db_models.User
	require.NoError(t, db.First(&user, "email = ?", email).Error)
	return user.Coin
}

func TestCreateTaskDebitsCreator(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	seedUser(t, db, "creator@pico.io", db_models.RoleTaskCreator, 100)

	task := &db_models.Task{
		CreatorEmail:  "creator@pico.io",
		Title:         "watch and review",
		PayableAmount: 5,
		TaskQuantity:  10,
	}
	require.NoError(t, repo.CreateWithDebit(ctx, task))

	assert.Equal(t, float64(50), userCoin(t, db, "creator@pico.io"))

	// A second listing pushes the balance negative; there is no floor.
	require.NoError(t, repo.CreateWithDebit(ctx, &db_models.Task{
		CreatorEmail:  "creator@pico.io",
		Title:         "another",
		PayableAmount: 30,
		TaskQuantity:  2,
	}))
	assert.Equal(t, float64(-10), userCoin(t, db, "creator@pico.io"))
}

func TestDeleteTaskRefundsCurrentQuantity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewTaskRepository(db)

	seedUser(t, db, "creator@pico.io", db_models.RoleTaskCreator, 0)
	task := seedTask(t, db, "creator@pico.io", 5, 10)

	// Submissions have meanwhile eaten into the quantity; the refund must
	// use the current value, not the created one.
	require.NoError(t, db.Model(&db_models.Task{}).
		Where("id = ?", task.ID).
		UpdateColumn("task_quantity", 4).Error)

	deleted, err := repo.DeleteWithRefund(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted.TaskQuantity)
	assert.Equal(t, float64(20), userCoin(t, db, "creator@pico.io"))

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	_, err = repo.DeleteWithRefund(ctx, task.ID)
	assert.ErrorIs(t, err, utils.ErrTaskNotFound)
}

func TestCreateSubmissionDecrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSubmissionRepository(db)

	task := seedTask(t, db, "creator@pico.io", 20, 1)

	sub := &db_models.Submission{
		TaskID:      task.ID,
		WorkerEmail: "worker@pico.io",
	}
	require.NoError(t, repo.CreateWithDecrement(ctx, sub))

	assert.Equal(t, "creator@pico.io", sub.CreatorEmail)
	assert.Equal(t, "watch and review", sub.TaskTitle)
	assert.Equal(t, float64(20), sub.PayableAmount)
	assert.Equal(t, db_models.SubmissionPending, sub.Status)

	// Quantity keeps dropping below zero when submissions exceed it.
	require.NoError(t, repo.CreateWithDecrement(ctx, &db_models.Submission{
		TaskID:      task.ID,
		WorkerEmail: "other@pico.io",
	}))

	var stored db_models.Task
	require.NoError(t, db.First(&stored, "id = ?", task.ID).Error)
	assert.Equal(t, int64(-1), stored.TaskQuantity)
}

func TestCreateSubmissionUnknownTask(t *testing.T) {
	db := newTestDB(t)
	repo := NewSubmissionRepository(db)

	err := repo.CreateWithDecrement(context.Background(), &db_models.Submission{
		TaskID:      uuid.New(),
		WorkerEmail: "worker@pico.io",
	})
	assert.ErrorIs(t, err, utils.ErrTaskNotFound)
}

func TestApproveCreditsWorkerOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSubmissionRepository(db)

	seedUser(t, db, "worker@pico.io", db_models.RoleWorker, 0)
	task := seedTask(t, db, "creator@pico.io", 20, 5)

	sub := &db_models.Submission{TaskID: task.ID, WorkerEmail: "worker@pico.io"}
	require.NoError(t, repo.CreateWithDecrement(ctx, sub))

	approved, err := repo.ApproveWithCredit(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.SubmissionApproved, approved.Status)
	assert.Equal(t, float64(20), userCoin(t, db, "worker@pico.io"))

	_, err = repo.ApproveWithCredit(ctx, sub.ID)
	assert.ErrorIs(t, err, utils.ErrSubmissionResolved)
	assert.Equal(t, float64(20), userCoin(t, db, "worker@pico.io"))
}

func TestRejectDoesNotCredit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSubmissionRepository(db)

	seedUser(t, db, "worker@pico.io", db_models.RoleWorker, 0)
	task := seedTask(t, db, "creator@pico.io", 20, 5)

	sub := &db_models.Submission{TaskID: task.ID, WorkerEmail: "worker@pico.io"}
	require.NoError(t, repo.CreateWithDecrement(ctx, sub))

	rejected, err := repo.Reject(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.SubmissionRejected, rejected.Status)
	assert.Equal(t, float64(0), userCoin(t, db, "worker@pico.io"))

	_, err = repo.ApproveWithCredit(ctx, sub.ID)
	assert.ErrorIs(t, err, utils.ErrSubmissionResolved)
}

func TestWorkerSubmissionPaging(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewSubmissionRepository(db)

	task := seedTask(t, db, "creator@pico.io", 1, 10)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.CreateWithDecrement(ctx, &db_models.Submission{
			TaskID:      task.ID,
			WorkerEmail: "worker@pico.io",
		}))
	}
	require.NoError(t, repo.CreateWithDecrement(ctx, &db_models.Submission{
		TaskID:      task.ID,
		WorkerEmail: "other@pico.io",
	}))

	page, err := repo.FindByWorkerPaged(ctx, "worker@pico.io", 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	last, err := repo.FindByWorkerPaged(ctx, "worker@pico.io", 4, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	count, err := repo.CountByWorker(ctx, "worker@pico.io")
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestResolveWithdrawalDebitsWorker(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewWithdrawalRepository(db)

	seedUser(t, db, "worker@pico.io", db_models.RoleWorker, 5)

	withdrawal := &db_models.Withdrawal{WorkerEmail: "worker@pico.io", Coin: 15}
	require.NoError(t, repo.Insert(ctx, withdrawal))

	// The debit applies even when the balance is insufficient.
	resolved, err := repo.ResolveWithDebit(ctx, withdrawal.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(15), resolved.Coin)
	assert.Equal(t, float64(-10), userCoin(t, db, "worker@pico.io"))

	remaining, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	// A second resolution is a not-found no-op, never a second debit.
	_, err = repo.ResolveWithDebit(ctx, withdrawal.ID)
	assert.ErrorIs(t, err, utils.ErrWithdrawalNotFound)
	assert.Equal(t, float64(-10), userCoin(t, db, "worker@pico.io"))
}

func TestFindAvailableExcludesExhausted(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)

	seedTask(t, db, "creator@pico.io", 5, 0)
	seedTask(t, db, "creator@pico.io", 5, 1)
	open := seedTask(t, db, "creator@pico.io", 5, 2)

	tasks, err := repo.FindAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, open.ID, tasks[0].ID)
}

func TestPaymentCreditsUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewPaymentRepository(db)

	seedUser(t, db, "creator@pico.io", db_models.RoleTaskCreator, 10)

	require.NoError(t, repo.CreateWithCredit(ctx, &db_models.Payment{
		Email:         "creator@pico.io",
		AmountMinor:   990,
		PurchasedCoin: 99,
		IntentID:      "pi_123",
	}))

	assert.Equal(t, float64(109), userCoin(t, db, "creator@pico.io"))

	payments, err := repo.FindByEmail(ctx, "creator@pico.io")
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, int64(990), payments[0].AmountMinor)
}

func TestTopEarnersOrderAndLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	for i := 0; i < 8; i++ {
		seedUser(t, db, fmt.Sprintf("worker%d@pico.io", i), db_models.RoleWorker, float64(i*10))
	}
	seedUser(t, db, "rich-creator@pico.io", db_models.RoleTaskCreator, 1000)

	rows, err := repo.TopEarners(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "worker7@pico.io", rows[0].Email)
	assert.Equal(t, float64(70), rows[0].Coin)
	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i].Coin, rows[i-1].Coin)
	}
}

func TestUserRoleUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := seedUser(t, db, "worker@pico.io", db_models.RoleWorker, 0)

	require.NoError(t, repo.UpdateRole(ctx, user.ID, db_models.RoleAdmin))
	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, db_models.RoleAdmin, stored.Role)

	require.NoError(t, repo.Delete(ctx, user.ID))
	gone, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	assert.ErrorIs(t, repo.Delete(ctx, user.ID), utils.ErrUserNotFound)
	assert.ErrorIs(t, repo.UpdateRole(ctx, uuid.New(), db_models.RoleAdmin), utils.ErrUserNotFound)
}

func TestDeletedEmailCanRegisterAgain(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := seedUser(t, db, "worker@pico.io", db_models.RoleWorker, 10)
	require.NoError(t, repo.Delete(ctx, user.ID))

	gone, err := repo.FindByEmail(ctx, "worker@pico.io")
	require.NoError(t, err)
	require.Nil(t, gone)

	// The delete must free the email; the unique index holding on to a
	// removed row would make the address unregisterable forever.
	require.NoError(t, repo.Insert(ctx, &db_models.User{
		Email: "worker@pico.io",
		Name:  "returning worker",
		Role:  db_models.RoleWorker,
	}))

	back, err := repo.FindByEmail(ctx, "worker@pico.io")
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Equal(t, float64(0), back.Coin)
}

func TestStatsAggregates(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	stats := NewStatsRepository(db)
	subRepo := NewSubmissionRepository(db)

	seedUser(t, db, "worker@pico.io", db_models.RoleWorker, 30)
	seedUser(t, db, "creator@pico.io", db_models.RoleTaskCreator, 70)

	task := seedTask(t, db, "creator@pico.io", 20, 5)
	seedTask(t, db, "creator@pico.io", 5, 3)

	approvedSub := &db_models.Submission{TaskID: task.ID, WorkerEmail: "worker@pico.io"}
	require.NoError(t, subRepo.CreateWithDecrement(ctx, approvedSub))
	_, err := subRepo.ApproveWithCredit(ctx, approvedSub.ID)
	require.NoError(t, err)

	pendingSub := &db_models.Submission{TaskID: task.ID, WorkerEmail: "worker@pico.io"}
	require.NoError(t, subRepo.CreateWithDecrement(ctx, pendingSub))

	require.NoError(t, db.Create(&db_models.Payment{
		Email: "creator@pico.io", AmountMinor: 1500, PurchasedCoin: 150,
	}).Error)

	users, err := stats.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)

	// worker was credited 20 on approval
	coins, err := stats.SumUserCoins(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(120), coins)

	paid, err := stats.SumPaymentsMinor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), paid)

	creatorPaid, err := stats.SumPaymentsMinorByEmail(ctx, "creator@pico.io")
	require.NoError(t, err)
	assert.Equal(t, int64(1500), creatorPaid)

	// task quantities: (5 - 2 submissions) + 3
	quantity, err := stats.SumTaskQuantityByCreator(ctx, "creator@pico.io")
	require.NoError(t, err)
	assert.Equal(t, int64(6), quantity)

	count, err := stats.CountSubmissionsByWorker(ctx, "worker@pico.io")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	earnings, err := stats.SumApprovedEarnings(ctx, "worker@pico.io")
	require.NoError(t, err)
	assert.Equal(t, float64(20), earnings)
}
