package service

import (
	"context"
	"fmt"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"
	"projtrack/pkg/lookupcache"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// FacultyService manages faculty profiles.
type FacultyService struct {
	facultyRepo *repository.FacultyRepository
	userRepo    *repository.UserRepository
	deptRepo    *repository.CatalogRepository[models.Department]
	uow         *repository.UnitOfWork
	cache       *lookupcache.Cache
	logger      *logrus.Logger
}

// NewFacultyService creates a FacultyService.
func NewFacultyService(
	facultyRepo *repository.FacultyRepository,
	userRepo *repository.UserRepository,
	deptRepo *repository.CatalogRepository[models.Department],
	uow *repository.UnitOfWork,
	cache *lookupcache.Cache,
	logger *logrus.Logger,
) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
		userRepo:    userRepo,
		deptRepo:    deptRepo,
		uow:         uow,
		cache:       cache,
		logger:      logger,
	}
}

// List returns every faculty profile, without images.
func (s *FacultyService) List(ctx context.Context) ([]models.Faculty, error) {
	rows, err := s.facultyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	return rows, nil
}

// Names returns the faculty id/name projection.
func (s *FacultyService) Names(ctx context.Context) ([]models.NameEntry, error) {
	return loadNames(ctx, s.cache, s.logger, namesFaculty, s.facultyRepo.ListNames)
}

// GetByUserID returns the profile owned by userID.
func (s *FacultyService) GetByUserID(ctx context.Context, userID uint) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Faculty member not found")
		}
		return nil, fmt.Errorf("get faculty by user: %w", err)
	}
	return faculty, nil
}

// GetByID returns the profile with faculty_id id.
func (s *FacultyService) GetByID(ctx context.Context, id uint) (*models.Faculty, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Faculty member not found")
		}
		return nil, fmt.Errorf("get faculty: %w", err)
	}
	return faculty, nil
}

// Create stores a faculty profile and marks the owning user's profile complete.
func (s *FacultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest) (uint, error) {
	if req.UserID == 0 || req.Name == "" || req.DepartmentID == 0 {
		return 0, newError(ErrMissingField, "user_id, name and department_id are required")
	}

	faculty := &models.Faculty{
		UserID:          req.UserID,
		Name:            req.Name,
		DepartmentID:    req.DepartmentID,
		Designation:     req.Designation,
		Role:            req.Role,
		PersonalEmail:   req.PersonalEmail,
		PhoneNo:         req.PhoneNo,
		LinkedinProfile: req.LinkedinProfile,
		GithubProfile:   req.GithubProfile,
		Image:           req.Image,
	}

	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)

		if err := requireUser(ctx, users, req.UserID); err != nil {
			return err
		}
		if err := requireDepartment(ctx, s.deptRepo.WithTx(tx), req.DepartmentID); err != nil {
			return err
		}

		if err := s.facultyRepo.WithTx(tx).Create(ctx, faculty); err != nil {
			return fmt.Errorf("create faculty: %w", err)
		}
		if err := users.MarkProfileComplete(ctx, req.UserID); err != nil {
			return fmt.Errorf("mark profile complete: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	dropNames(ctx, s.cache, s.logger, namesFaculty)
	s.logger.WithFields(logrus.Fields{
		"faculty_id": faculty.ID,
		"user_id":    faculty.UserID,
	}).Info("faculty profile created")
	return faculty.ID, nil
}

// UpdateByUserID applies a partial update to the profile owned by userID.
func (s *FacultyService) UpdateByUserID(ctx context.Context, userID uint, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	fields := map[string]interface{}{}
	setString(fields, "name", req.Name)
	setString(fields, "designation", req.Designation)
	setString(fields, "role", req.Role)
	setString(fields, "personal_email", req.PersonalEmail)
	setString(fields, "phone_no", req.PhoneNo)
	setString(fields, "linkedin_profile", req.LinkedinProfile)
	setString(fields, "github_profile", req.GithubProfile)
	if req.DepartmentID != nil {
		fields["department_id"] = *req.DepartmentID
	}
	if req.Image != nil {
		fields["image"] = req.Image
	}
	if name, ok := fields["name"]; ok && name == "" {
		return nil, invalidInput("name must not be empty")
	}

	var faculty *models.Faculty
	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.facultyRepo.WithTx(tx)

		var err error
		faculty, err = repo.GetByUserID(ctx, userID)
		if err != nil {
			if isRecordNotFound(err) {
				return notFound("Faculty member not found")
			}
			return fmt.Errorf("get faculty by user: %w", err)
		}

		if req.DepartmentID != nil {
			if err := requireDepartment(ctx, s.deptRepo.WithTx(tx), *req.DepartmentID); err != nil {
				return err
			}
		}

		if err := repo.Updates(ctx, faculty, fields); err != nil {
			return fmt.Errorf("update faculty: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := fields["name"]; ok {
		dropNames(ctx, s.cache, s.logger, namesFaculty)
	}
	s.logger.WithFields(logrus.Fields{
		"faculty_id": faculty.ID,
		"fields":     len(fields),
	}).Debug("faculty profile updated")
	return faculty, nil
}

func setString(fields map[string]interface{}, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}

func requireUser(ctx context.Context, users *repository.UserRepository, id uint) error {
	exists, err := users.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return notFound("User not found")
	}
	return nil
}

func requireDepartment(ctx context.Context, depts *repository.CatalogRepository[models.Department], id uint) error {
	exists, err := depts.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check department: %w", err)
	}
	if !exists {
		return newError(ErrInvalidReference, "department_id %d does not exist", id)
	}
	return nil
}
