package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"
	"projtrack/pkg/lookupcache"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var maxCGPA = decimal.NewFromInt(10)

// StudentService manages student profiles.
type StudentService struct {
	studentRepo *repository.StudentRepository
	userRepo    *repository.UserRepository
	deptRepo    *repository.CatalogRepository[models.Department]
	uow         *repository.UnitOfWork
	cache       *lookupcache.Cache
	logger      *logrus.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(
	studentRepo *repository.StudentRepository,
	userRepo *repository.UserRepository,
	deptRepo *repository.CatalogRepository[models.Department],
	uow *repository.UnitOfWork,
	cache *lookupcache.Cache,
	logger *logrus.Logger,
) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
		deptRepo:    deptRepo,
		uow:         uow,
		cache:       cache,
		logger:      logger,
	}
}

// List returns every student profile, without images.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	rows, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return rows, nil
}

// Names returns the student id/name projection.
func (s *StudentService) Names(ctx context.Context) ([]models.NameEntry, error) {
	return loadNames(ctx, s.cache, s.logger, namesStudents, s.studentRepo.ListNames)
}

// GetByUserID returns the profile owned by userID.
func (s *StudentService) GetByUserID(ctx context.Context, userID uint) (*models.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Student not found")
		}
		return nil, fmt.Errorf("get student by user: %w", err)
	}
	return student, nil
}

// GetByID returns the profile with student_id id.
func (s *StudentService) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Student not found")
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return student, nil
}

// Create stores a student profile and marks the owning user's profile complete.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (uint, error) {
	if req.UserID == 0 || req.Name == "" || req.USN == "" || req.DepartmentID == 0 {
		return 0, newError(ErrMissingField, "user_id, name, usn and department_id are required")
	}
	cgpa, _, err := parseCGPA(req.CGPA)
	if err != nil {
		return 0, err
	}

	student := &models.Student{
		UserID:          req.UserID,
		Name:            req.Name,
		USN:             req.USN,
		DepartmentID:    req.DepartmentID,
		CGPA:            cgpa,
		PersonalEmail:   req.PersonalEmail,
		PhoneNo:         req.PhoneNo,
		LinkedinProfile: req.LinkedinProfile,
		GithubProfile:   req.GithubProfile,
		Image:           req.Image,
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		users := s.userRepo.WithTx(tx)
		students := s.studentRepo.WithTx(tx)

		if err := requireUser(ctx, users, req.UserID); err != nil {
			return err
		}
		if err := requireDepartment(ctx, s.deptRepo.WithTx(tx), req.DepartmentID); err != nil {
			return err
		}

		taken, err := students.ExistsByUSN(ctx, req.USN)
		if err != nil {
			return fmt.Errorf("check usn: %w", err)
		}
		if taken {
			return invalidInput("USN %s is already registered", req.USN)
		}

		if err := students.Create(ctx, student); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return invalidInput("USN %s is already registered", req.USN)
			}
			return fmt.Errorf("create student: %w", err)
		}
		if err := users.MarkProfileComplete(ctx, req.UserID); err != nil {
			return fmt.Errorf("mark profile complete: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	dropNames(ctx, s.cache, s.logger, namesStudents)
	s.logger.WithFields(logrus.Fields{
		"student_id": student.ID,
		"user_id":    student.UserID,
	}).Info("student profile created")
	return student.ID, nil
}

// UpdateByUserID applies a partial update to the profile owned by userID. CGPA is
// range checked on every update.
func (s *StudentService) UpdateByUserID(ctx context.Context, userID uint, req *dto.UpdateStudentRequest) (*models.Student, error) {
	fields := map[string]interface{}{}
	setString(fields, "name", req.Name)
	setString(fields, "personal_email", req.PersonalEmail)
	setString(fields, "phone_no", req.PhoneNo)
	setString(fields, "linkedin_profile", req.LinkedinProfile)
	setString(fields, "github_profile", req.GithubProfile)
	if req.Image != nil {
		fields["image"] = req.Image
	}
	if name, ok := fields["name"]; ok && name == "" {
		return nil, invalidInput("name must not be empty")
	}

	cgpa, present, err := parseCGPA(req.CGPA)
	if err != nil {
		return nil, err
	}
	if present {
		fields["cgpa"] = cgpa
	}

	var student *models.Student
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.studentRepo.WithTx(tx)

		var err error
		student, err = repo.GetByUserID(ctx, userID)
		if err != nil {
			if isRecordNotFound(err) {
				return notFound("Student not found")
			}
			return fmt.Errorf("get student by user: %w", err)
		}

		if err := repo.Updates(ctx, student, fields); err != nil {
			return fmt.Errorf("update student: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := fields["name"]; ok {
		dropNames(ctx, s.cache, s.logger, namesStudents)
	}
	s.logger.WithFields(logrus.Fields{
		"student_id": student.ID,
		"fields":     len(fields),
	}).Debug("student profile updated")
	return student, nil
}

// parseCGPA decodes a raw cgpa value. Absent and null values are reported as not
// present. Numbers and numeric strings are accepted; the result must lie in [0, 10].
func parseCGPA(raw json.RawMessage) (decimal.NullDecimal, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.NullDecimal{}, false, nil
	}

	var value decimal.Decimal
	if err := value.UnmarshalJSON(raw); err != nil {
		return decimal.NullDecimal{}, true, invalidInput("CGPA must be a valid number")
	}
	if value.IsNegative() || value.GreaterThan(maxCGPA) {
		return decimal.NullDecimal{}, true, invalidInput("CGPA must be between 0 and 10")
	}
	return decimal.NewNullDecimal(value.Round(2)), true, nil
}
