package repository

import (
	"context"

	"projtrack/internal/models"

	"gorm.io/gorm"
)

// StudentRepository is the data access layer for student profiles.
type StudentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a StudentRepository.
func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *StudentRepository) WithTx(tx *gorm.DB) *StudentRepository {
	return &StudentRepository{db: tx}
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// GetByID fetches by student_id.
func (r *StudentRepository) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByUserID fetches the profile owned by userID.
func (r *StudentRepository) GetByUserID(ctx context.Context, userID uint) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("student_id").First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByUSN reports whether usn is taken.
func (r *StudentRepository) ExistsByUSN(ctx context.Context, usn string) (bool, error) {
	return rowExists(ctx, r.db, "students", "usn", usn)
}

// List returns every profile without images.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	var rows []models.Student
	err := r.db.WithContext(ctx).Omit("image").Order("student_id").Find(&rows).Error
	return rows, err
}

func (r *StudentRepository) ListNames(ctx context.Context) ([]models.NameEntry, error) {
	entries := []models.NameEntry{}
	err := r.db.WithContext(ctx).Table("students").Select("student_id AS id, name").Order("student_id").Scan(&entries).Error
	return entries, err
}

// Updates writes only the columns in fields and reloads student.
func (r *StudentRepository) Updates(ctx context.Context, student *models.Student, fields map[string]interface{}) error {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(student).Updates(fields).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).First(student, student.ID).Error
}
