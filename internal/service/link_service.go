package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Association binds a join table to the field names its requests and responses use.
type Association struct {
	Spec repository.LinkSpec

	OwnerField   string // request key of the owner id, e.g. "student_id"
	TargetsField string // request key of the id list, e.g. "technology_ids"
	ResultField  string // response key of the linked targets, e.g. "technologies"
	OwnerLabel   string
	TargetLabel  string
}

// Name is the route segment, equal to the join table name.
func (a Association) Name() string {
	return a.Spec.JoinTable
}

// The association pairs managed with replace-set semantics.
var (
	StudentTechnologies = Association{
		Spec: repository.StudentTechnologies, OwnerField: "student_id", TargetsField: "technology_ids",
		ResultField: "technologies", OwnerLabel: "Student", TargetLabel: "technology",
	}
	FacultyTechnologies = Association{
		Spec: repository.FacultyTechnologies, OwnerField: "faculty_id", TargetsField: "technology_ids",
		ResultField: "technologies", OwnerLabel: "Faculty", TargetLabel: "technology",
	}
	ProjectTechnologies = Association{
		Spec: repository.ProjectTechnologies, OwnerField: "project_id", TargetsField: "technology_ids",
		ResultField: "technologies", OwnerLabel: "Project", TargetLabel: "technology",
	}
	ProjectThemes = Association{
		Spec: repository.ProjectThemes, OwnerField: "project_id", TargetsField: "theme_ids",
		ResultField: "themes", OwnerLabel: "Project", TargetLabel: "theme",
	}
	ProjectStudents = Association{
		Spec: repository.ProjectStudents, OwnerField: "project_id", TargetsField: "student_ids",
		ResultField: "students", OwnerLabel: "Project", TargetLabel: "student",
	}
	ProjectFaculty = Association{
		Spec: repository.ProjectFaculty, OwnerField: "project_id", TargetsField: "faculty_ids",
		ResultField: "faculty", OwnerLabel: "Project", TargetLabel: "faculty",
	}
	ProjectDepartments = Association{
		Spec: repository.ProjectDepartments, OwnerField: "project_id", TargetsField: "department_ids",
		ResultField: "departments", OwnerLabel: "Project", TargetLabel: "department",
	}
)

// Associations lists every managed pair.
func Associations() []Association {
	return []Association{
		StudentTechnologies,
		FacultyTechnologies,
		ProjectTechnologies,
		ProjectThemes,
		ProjectStudents,
		ProjectFaculty,
		ProjectDepartments,
	}
}

// LinkService maintains many-to-many associations.
type LinkService struct {
	linkRepo *repository.LinkRepository
	uow      *repository.UnitOfWork
	logger   *logrus.Logger
}

// NewLinkService creates a LinkService.
func NewLinkService(linkRepo *repository.LinkRepository, uow *repository.UnitOfWork, logger *logrus.Logger) *LinkService {
	return &LinkService{
		linkRepo: linkRepo,
		uow:      uow,
		logger:   logger,
	}
}

// Replace swaps the owner's whole target set for the ids in rawIDs and returns the new
// set with display names, ordered by id. Nothing changes unless every step succeeds.
func (s *LinkService) Replace(ctx context.Context, a Association, ownerID uint, rawIDs json.RawMessage) ([]models.NameEntry, error) {
	if ownerID == 0 {
		return nil, a.missing()
	}
	ids, err := decodeIDs(a, rawIDs)
	if err != nil {
		return nil, err
	}

	var linked []models.NameEntry
	err = s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.linkRepo.WithTx(tx)

		exists, err := repo.OwnerExists(ctx, a.Spec, ownerID)
		if err != nil {
			return fmt.Errorf("check %s: %w", a.Spec.OwnerTable, err)
		}
		if !exists {
			return notFound("%s not found", a.OwnerLabel)
		}

		found, err := repo.CountTargets(ctx, a.Spec, ids)
		if err != nil {
			return fmt.Errorf("check %s: %w", a.Spec.TargetTable, err)
		}
		if found != int64(len(ids)) {
			return a.invalidTargets()
		}

		if err := repo.DeleteByOwner(ctx, a.Spec, ownerID); err != nil {
			return fmt.Errorf("clear %s: %w", a.Spec.JoinTable, err)
		}
		if err := repo.CreateBatch(ctx, a.Spec, ownerID, ids); err != nil {
			return fmt.Errorf("insert %s: %w", a.Spec.JoinTable, err)
		}

		linked, err = repo.ListTargetNames(ctx, a.Spec, ownerID)
		if err != nil {
			return fmt.Errorf("reload %s: %w", a.Spec.JoinTable, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"association": a.Name(),
		"owner_id":    ownerID,
		"targets":     len(linked),
	}).Info("association replaced")
	return linked, nil
}

// List returns the raw edges of ownerID. An unknown owner has no edges.
func (s *LinkService) List(ctx context.Context, a Association, ownerID uint) ([]models.Link, error) {
	links, err := s.linkRepo.ListByOwner(ctx, a.Spec, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", a.Spec.JoinTable, err)
	}
	return links, nil
}

// SwapTechnology rewrites a single student technology edge in place.
//
// Deprecated: replace the whole set through Replace with StudentTechnologies.
func (s *LinkService) SwapTechnology(ctx context.Context, req *dto.SwapTechnologyRequest) error {
	if req.StudentID == 0 || req.OldTechnologyID == 0 || req.NewTechnologyID == 0 {
		return newError(ErrMissingField, "student_id, old_technology_id, and new_technology_id are required")
	}
	spec := StudentTechnologies.Spec

	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.linkRepo.WithTx(tx)

		exists, err := repo.Exists(ctx, spec, req.StudentID, req.OldTechnologyID)
		if err != nil {
			return fmt.Errorf("check edge: %w", err)
		}
		if !exists {
			return notFound("Technology entry not found")
		}
		if req.OldTechnologyID == req.NewTechnologyID {
			return nil
		}

		valid, err := repo.TargetExists(ctx, spec, req.NewTechnologyID)
		if err != nil {
			return fmt.Errorf("check technology: %w", err)
		}
		if !valid {
			return newError(ErrInvalidReference, "technology_id %d does not exist", req.NewTechnologyID)
		}

		// the edge key is composite, so an existing new edge absorbs the old one
		taken, err := repo.Exists(ctx, spec, req.StudentID, req.NewTechnologyID)
		if err != nil {
			return fmt.Errorf("check edge: %w", err)
		}
		if taken {
			return repo.Delete(ctx, spec, req.StudentID, req.OldTechnologyID)
		}
		return repo.Retarget(ctx, spec, req.StudentID, req.OldTechnologyID, req.NewTechnologyID)
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"student_id":        req.StudentID,
		"old_technology_id": req.OldTechnologyID,
		"new_technology_id": req.NewTechnologyID,
	}).Info("student technology swapped")
	return nil
}

func (a Association) missing() *Error {
	return newError(ErrMissingField, "%s and %s are required", a.OwnerField, a.TargetsField)
}

func (a Association) invalidTargets() *Error {
	return newError(ErrInvalidReference, "Some %s IDs are invalid", a.TargetLabel)
}

// decodeIDs reads a JSON list of positive integer ids and drops duplicates, keeping
// first occurrence order.
func decodeIDs(a Association, raw json.RawMessage) ([]uint, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, a.missing()
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalidInput("%s must be a list of integers", a.TargetsField)
	}
	if len(items) == 0 {
		return nil, a.missing()
	}

	ids := make([]uint, 0, len(items))
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		var n int64
		if err := json.Unmarshal(item, &n); err != nil {
			return nil, invalidInput("%s must be a list of integers", a.TargetsField)
		}
		if n <= 0 {
			return nil, a.invalidTargets()
		}
		id := uint(n)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
