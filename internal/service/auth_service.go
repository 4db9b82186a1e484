package service

import (
	"context"
	"errors"
	"fmt"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"
	"projtrack/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles sign-up and credential checks. No session or token is issued.
type AuthService struct {
	userRepo   *repository.UserRepository
	uow        *repository.UnitOfWork
	bcryptCost int
	logger     *logrus.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(userRepo *repository.UserRepository, uow *repository.UnitOfWork, bcryptCost int, logger *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		uow:        uow,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup registers a user and returns its id.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (uint, error) {
	user, err := registerUser(ctx, s.uow, s.userRepo, s.bcryptCost, newUserParams{
		email:    req.CollegeEmail,
		password: req.Password,
		role:     req.Role,
	})
	if err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user signed up")
	return user.ID, nil
}

// Login checks credentials and returns the user id.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (uint, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.CollegeEmail)
	if err != nil {
		if isRecordNotFound(err) {
			return 0, newError(ErrInvalidCredentials, "Invalid credentials!")
		}
		return 0, fmt.Errorf("look up user: %w", err)
	}

	if err := utils.CheckPassword(req.Password, user.HashedPassword); err != nil {
		return 0, newError(ErrInvalidCredentials, "Invalid credentials!")
	}

	return user.ID, nil
}

type newUserParams struct {
	email           string
	password        string
	role            string
	profileComplete bool
}

// registerUser hashes the password and inserts the user in one unit of work.
func registerUser(
	ctx context.Context,
	uow *repository.UnitOfWork,
	userRepo *repository.UserRepository,
	cost int,
	p newUserParams,
) (*models.User, error) {
	role := p.role
	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRole(role) {
		return nil, invalidInput("role must be %s or %s", models.RoleFaculty, models.RoleStudent)
	}
	if p.email == "" || p.password == "" {
		return nil, newError(ErrMissingField, "college_email and password are required")
	}

	hashed, err := utils.HashPassword(p.password, cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, invalidInput("password must be at most 72 bytes")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Role:              role,
		CollegeEmail:      p.email,
		HashedPassword:    hashed,
		IsProfileComplete: p.profileComplete,
	}

	err = uow.Do(ctx, func(tx *gorm.DB) error {
		users := userRepo.WithTx(tx)

		exists, err := users.ExistsByEmail(ctx, p.email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return newError(ErrDuplicateEmail, "Email already registered!")
		}

		if err := users.Create(ctx, user); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return newError(ErrDuplicateEmail, "Email already registered!")
			}
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
