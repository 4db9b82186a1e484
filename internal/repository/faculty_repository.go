package repository

import (
	"context"

	"projtrack/internal/models"

	"gorm.io/gorm"
)

// FacultyRepository is the data access layer for faculty profiles.
type FacultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository creates a FacultyRepository.
func NewFacultyRepository(db *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *FacultyRepository) WithTx(tx *gorm.DB) *FacultyRepository {
	return &FacultyRepository{db: tx}
}

func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

// GetByID fetches by faculty_id.
func (r *FacultyRepository) GetByID(ctx context.Context, id uint) (*models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, id).Error; err != nil {
		return nil, err
	}
	return &faculty, nil
}

// GetByUserID fetches the profile owned by userID. When several exist the oldest wins.
func (r *FacultyRepository) GetByUserID(ctx context.Context, userID uint) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("faculty_id").First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// List returns every profile without images.
func (r *FacultyRepository) List(ctx context.Context) ([]models.Faculty, error) {
	var rows []models.Faculty
	err := r.db.WithContext(ctx).Omit("image").Order("faculty_id").Find(&rows).Error
	return rows, err
}

func (r *FacultyRepository) ListNames(ctx context.Context) ([]models.NameEntry, error) {
	entries := []models.NameEntry{}
	err := r.db.WithContext(ctx).Table("faculty").Select("faculty_id AS id, name").Order("faculty_id").Scan(&entries).Error
	return entries, err
}

// Updates writes only the columns in fields and reloads faculty.
func (r *FacultyRepository) Updates(ctx context.Context, faculty *models.Faculty, fields map[string]interface{}) error {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(faculty).Updates(fields).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).First(faculty, faculty.ID).Error
}
