package service

import (
	"context"
	"fmt"
	"time"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"
	"projtrack/pkg/lookupcache"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// budgets are stored as numeric(10,2)
var maxBudget = decimal.New(1, 8)

// ProjectService manages projects.
type ProjectService struct {
	projectRepo *repository.ProjectRepository
	userRepo    *repository.UserRepository
	uow         *repository.UnitOfWork
	cache       *lookupcache.Cache
	logger      *logrus.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(
	projectRepo *repository.ProjectRepository,
	userRepo *repository.UserRepository,
	uow *repository.UnitOfWork,
	cache *lookupcache.Cache,
	logger *logrus.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		uow:         uow,
		cache:       cache,
		logger:      logger,
	}
}

// List returns every project, without images.
func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	rows, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return rows, nil
}

// ListByOwner returns the projects owned by ownerID.
func (s *ProjectService) ListByOwner(ctx context.Context, ownerID uint) ([]models.Project, error) {
	rows, err := s.projectRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects by owner: %w", err)
	}
	return rows, nil
}

// Names returns the project id/name projection.
func (s *ProjectService) Names(ctx context.Context) ([]models.NameEntry, error) {
	return loadNames(ctx, s.cache, s.logger, namesProjects, s.projectRepo.ListNames)
}

// Get returns the project with id.
func (s *ProjectService) Get(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return nil, notFound("Project not found")
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// Create inserts a project owned by an existing user, filling defaults for omitted
// optional fields.
func (s *ProjectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (uint, error) {
	if req.Name == "" || req.OwnerID == 0 {
		return 0, newError(ErrMissingField, "name and owner_id are required")
	}

	project := &models.Project{
		Name:    req.Name,
		Budget:  decimal.Zero,
		Status:  models.ProjectStatusProposed,
		Image:   req.Image,
		OwnerID: req.OwnerID,
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.GithubLink != nil {
		project.GithubLink = *req.GithubLink
	}
	if req.StudentsInvolvedCount != nil {
		if *req.StudentsInvolvedCount < 0 {
			return 0, invalidInput("students_involved_count must not be negative")
		}
		project.StudentsInvolvedCount = *req.StudentsInvolvedCount
	}
	if req.Status != nil {
		if !models.ValidProjectStatus(*req.Status) {
			return 0, invalidInput("status must be one of Ongoing, Completed, Proposed")
		}
		project.Status = *req.Status
	}
	if req.Budget != nil {
		budget, err := checkBudget(*req.Budget)
		if err != nil {
			return 0, err
		}
		project.Budget = budget
	}

	var err error
	if project.StartDate, err = parseDate("start_date", req.StartDate); err != nil {
		return 0, err
	}
	if project.EndDate, err = parseDate("end_date", req.EndDate); err != nil {
		return 0, err
	}
	if err := checkDateOrder(project.StartDate, project.EndDate); err != nil {
		return 0, err
	}

	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		if err := requireOwner(ctx, s.userRepo.WithTx(tx), req.OwnerID); err != nil {
			return err
		}
		if err := s.projectRepo.WithTx(tx).Create(ctx, project); err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	dropNames(ctx, s.cache, s.logger, namesProjects)
	s.logger.WithFields(logrus.Fields{
		"project_id": project.ID,
		"owner_id":   project.OwnerID,
	}).Info("project created")
	return project.ID, nil
}

// Update applies a partial update to the project with id.
func (s *ProjectService) Update(ctx context.Context, id uint, req *dto.UpdateProjectRequest) (*models.Project, error) {
	fields := map[string]interface{}{}
	setString(fields, "name", req.Name)
	setString(fields, "description", req.Description)
	setString(fields, "github_link", req.GithubLink)
	if name, ok := fields["name"]; ok && name == "" {
		return nil, invalidInput("name must not be empty")
	}
	if req.Status != nil {
		if !models.ValidProjectStatus(*req.Status) {
			return nil, invalidInput("status must be one of Ongoing, Completed, Proposed")
		}
		fields["status"] = *req.Status
	}
	if req.StudentsInvolvedCount != nil {
		if *req.StudentsInvolvedCount < 0 {
			return nil, invalidInput("students_involved_count must not be negative")
		}
		fields["students_involved_count"] = *req.StudentsInvolvedCount
	}
	if req.Budget != nil {
		budget, err := checkBudget(*req.Budget)
		if err != nil {
			return nil, err
		}
		fields["budget"] = budget
	}
	if req.Image != nil {
		fields["image"] = req.Image
	}
	if req.OwnerID != nil {
		fields["owner_id"] = *req.OwnerID
	}

	startDate, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}
	if startDate != nil {
		fields["start_date"] = *startDate
	}
	if endDate != nil {
		fields["end_date"] = *endDate
	}

	var project *models.Project
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.projectRepo.WithTx(tx)

		var err error
		project, err = repo.GetByID(ctx, id)
		if err != nil {
			if isRecordNotFound(err) {
				return notFound("Project not found")
			}
			return fmt.Errorf("get project: %w", err)
		}

		// order is checked against the stored date when only one side changes
		start, end := project.StartDate, project.EndDate
		if startDate != nil {
			start = startDate
		}
		if endDate != nil {
			end = endDate
		}
		if err := checkDateOrder(start, end); err != nil {
			return err
		}

		if req.OwnerID != nil {
			if err := requireOwner(ctx, s.userRepo.WithTx(tx), *req.OwnerID); err != nil {
				return err
			}
		}

		if err := repo.Updates(ctx, project, fields); err != nil {
			return fmt.Errorf("update project: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := fields["name"]; ok {
		dropNames(ctx, s.cache, s.logger, namesProjects)
	}
	s.logger.WithFields(logrus.Fields{
		"project_id": project.ID,
		"fields":     len(fields),
	}).Debug("project updated")
	return project, nil
}

func requireOwner(ctx context.Context, users *repository.UserRepository, id uint) error {
	exists, err := users.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check owner: %w", err)
	}
	if !exists {
		return newError(ErrInvalidReference, "owner_id %d does not exist", id)
	}
	return nil
}

func checkBudget(budget decimal.Decimal) (decimal.Decimal, error) {
	if budget.IsNegative() {
		return decimal.Zero, invalidInput("budget must not be negative")
	}
	budget = budget.Round(2)
	if budget.GreaterThanOrEqual(maxBudget) {
		return decimal.Zero, invalidInput("budget must be less than %s", maxBudget.String())
	}
	return budget, nil
}

func parseDate(field string, value *string) (*datatypes.Date, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dto.DateLayout, *value)
	if err != nil {
		return nil, invalidInput("%s must be a date in YYYY-MM-DD format", field)
	}
	d := datatypes.Date(t)
	return &d, nil
}

func checkDateOrder(start, end *datatypes.Date) error {
	if start == nil || end == nil {
		return nil
	}
	if time.Time(*end).Before(time.Time(*start)) {
		return invalidInput("end_date must not be before start_date")
	}
	return nil
}
