package repository

import (
	"context"

	"projtrack/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository is the data access layer for projects.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a ProjectRepository.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns every project without images.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Omit("image").Order("project_id").Find(&projects).Error
	return projects, err
}

// ListByOwner returns the projects owned by ownerID.
func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).Omit("image").Where("owner_id = ?", ownerID).Order("project_id").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) ListNames(ctx context.Context) ([]models.NameEntry, error) {
	entries := []models.NameEntry{}
	err := r.db.WithContext(ctx).Table("projects").Select("project_id AS id, name").Order("project_id").Scan(&entries).Error
	return entries, err
}

// Updates writes only the columns in fields and reloads project.
func (r *ProjectRepository) Updates(ctx context.Context, project *models.Project, fields map[string]interface{}) error {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(project).Updates(fields).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).First(project, project.ID).Error
}
