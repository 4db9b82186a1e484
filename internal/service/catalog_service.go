package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"projtrack/internal/models"
	"projtrack/internal/repository"
	"projtrack/pkg/lookupcache"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogService manages one of the name-keyed lookup tables.
type CatalogService[T repository.CatalogEntity] struct {
	repo   *repository.CatalogRepository[T]
	uow    *repository.UnitOfWork
	cache  *lookupcache.Cache
	logger *logrus.Logger

	label string
	build func(name string) *T
	idOf  func(*T) uint
}

// NewDepartmentService creates the department catalog.
func NewDepartmentService(repo *repository.CatalogRepository[models.Department], uow *repository.UnitOfWork, cache *lookupcache.Cache, logger *logrus.Logger) *CatalogService[models.Department] {
	return &CatalogService[models.Department]{
		repo: repo, uow: uow, cache: cache, logger: logger,
		label: "Department",
		build: func(name string) *models.Department { return &models.Department{Name: name} },
		idOf:  func(d *models.Department) uint { return d.ID },
	}
}

// NewTechnologyService creates the technology catalog.
func NewTechnologyService(repo *repository.CatalogRepository[models.Technology], uow *repository.UnitOfWork, cache *lookupcache.Cache, logger *logrus.Logger) *CatalogService[models.Technology] {
	return &CatalogService[models.Technology]{
		repo: repo, uow: uow, cache: cache, logger: logger,
		label: "Technology",
		build: func(name string) *models.Technology { return &models.Technology{Name: name} },
		idOf:  func(t *models.Technology) uint { return t.ID },
	}
}

// NewThemeService creates the theme catalog.
func NewThemeService(repo *repository.CatalogRepository[models.Theme], uow *repository.UnitOfWork, cache *lookupcache.Cache, logger *logrus.Logger) *CatalogService[models.Theme] {
	return &CatalogService[models.Theme]{
		repo: repo, uow: uow, cache: cache, logger: logger,
		label: "Theme",
		build: func(name string) *models.Theme { return &models.Theme{Name: name} },
		idOf:  func(t *models.Theme) uint { return t.ID },
	}
}

// Label is the singular display name, e.g. "Technology".
func (s *CatalogService[T]) Label() string {
	return s.label
}

// List returns every row ordered by id.
func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.repo.Table(), err)
	}
	return rows, nil
}

// Names returns the id/name projection.
func (s *CatalogService[T]) Names(ctx context.Context) ([]models.NameEntry, error) {
	return loadNames(ctx, s.cache, s.logger, s.repo.Table(), s.repo.ListNames)
}

// Create inserts a row named name and returns its id. Names are unique.
func (s *CatalogService[T]) Create(ctx context.Context, name string) (uint, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, newError(ErrMissingField, "name is required")
	}

	entity := s.build(name)
	err := s.uow.Do(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		exists, err := repo.ExistsByName(ctx, name)
		if err != nil {
			return fmt.Errorf("check %s name: %w", s.repo.Table(), err)
		}
		if exists {
			return invalidInput("%s %q already exists", s.label, name)
		}

		if err := repo.Create(ctx, entity); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return invalidInput("%s %q already exists", s.label, name)
			}
			return fmt.Errorf("create %s: %w", s.repo.Table(), err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	dropNames(ctx, s.cache, s.logger, s.repo.Table())
	id := s.idOf(entity)
	s.logger.WithFields(logrus.Fields{
		"table": s.repo.Table(),
		"id":    id,
	}).Info("catalog entry created")
	return id, nil
}
