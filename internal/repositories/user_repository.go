package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pico/internal/models/db_models"
	"pico/pkg/utils"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindAll(ctx context.Context) ([]db_models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	TopEarners(ctx context.Context, limit int) ([]TopEarnerRow, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

type TopEarnerRow struct {
	Name  string  `gorm:"column:name"`
	Email string  `gorm:"column:email"`
	Image string  `gorm:"column:image"`
	Coin  float64 `gorm:"column:coin"`
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	err := u.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (u *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role db_models.Role) error {
	res := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

// Delete removes the row for good. A soft delete would keep the email in
// the unique index and block the address from ever registering again.
func (u *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := u.db.WithContext(ctx).Unscoped().Delete(&db_models.User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (u *userRepository) TopEarners(ctx context.Context, limit int) ([]TopEarnerRow, error) {
	var rows []TopEarnerRow
	err := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Select("name, email, image, coin").
		Where("role = ?", db_models.RoleWorker).
		Order("coin DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
