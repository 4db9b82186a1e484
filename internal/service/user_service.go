package service

import (
	"context"
	"fmt"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"

	"github.com/sirupsen/logrus"
)

// UserService manages user rows outside the sign-up flow.
type UserService struct {
	userRepo   *repository.UserRepository
	uow        *repository.UnitOfWork
	bcryptCost int
	logger     *logrus.Logger
}

// NewUserService creates a UserService.
func NewUserService(userRepo *repository.UserRepository, uow *repository.UnitOfWork, bcryptCost int, logger *logrus.Logger) *UserService {
	return &UserService{
		userRepo:   userRepo,
		uow:        uow,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns the user with id.
func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Create inserts a user. The plaintext password is hashed like at sign-up.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (uint, error) {
	user, err := registerUser(ctx, s.uow, s.userRepo, s.bcryptCost, newUserParams{
		email:           req.CollegeEmail,
		password:        req.Password,
		role:            req.Role,
		profileComplete: req.IsProfileComplete,
	})
	if err != nil {
		return 0, err
	}

	s.logger.WithField("user_id", user.ID).Info("user created")
	return user.ID, nil
}
