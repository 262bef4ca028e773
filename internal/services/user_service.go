package services

import (
	"context"

	"github.com/google/uuid"

	"pico/internal/models/db_models"
	"pico/internal/models/request_models"
	"pico/internal/models/response_models"
	"pico/internal/repositories"
	"pico/pkg/utils"
)

const topEarnerLimit = 6

type UserServiceInterface interface {
	// Register is idempotent by email: registering an existing email returns
	// the stored user with existed=true and performs no write.
	Register(ctx context.Context, req request_models.RegisterUserRequest) (*db_models.User, bool, error)
	GetByEmail(ctx context.Context, email string) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	UpdateRole(ctx context.Context, id string, role string) error
	Delete(ctx context.Context, id string) error
	TopEarners(ctx context.Context) ([]response_models.TopEarner, error)
}

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserServiceInterface {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Register(ctx context.Context, req request_models.RegisterUserRequest) (*db_models.User, bool, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, false, utils.ErrDatabaseError
	}
	if existing != nil {
		return existing, true, nil
	}

	role := db_models.Role(req.Role)
	if req.Role == "" {
		role = db_models.RoleWorker
	}
	if !role.Valid() {
		return nil, false, utils.ErrInvalidRole
	}

	user := &db_models.User{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
		Role:  role,
		Coin:  req.Coin,
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, false, utils.ErrDatabaseError
	}

	return user, false, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*db_models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) ListAll(ctx context.Context) ([]db_models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return user != nil && user.Role == db_models.RoleAdmin, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidID
	}

	newRole := db_models.Role(role)
	if !newRole.Valid() {
		return utils.ErrInvalidRole
	}

	return s.userRepo.UpdateRole(ctx, userID, newRole)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	userID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrInvalidID
	}
	return s.userRepo.Delete(ctx, userID)
}

func (s *UserService) TopEarners(ctx context.Context) ([]response_models.TopEarner, error) {
	rows, err := s.userRepo.TopEarners(ctx, topEarnerLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	earners := make([]response_models.TopEarner, 0, len(rows))
	for _, row := range rows {
		earners = append(earners, response_models.TopEarner{
			Name:  row.Name,
			Email: row.Email,
			Image: row.Image,
			Coin:  row.Coin,
		})
	}
	return earners, nil
}
