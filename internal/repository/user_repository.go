package repository

import (
	"context"

	"projtrack/internal/models"

	"gorm.io/gorm"
)

// UserRepository is the data access layer for users.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

// Create inserts user and fills its ID.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID fetches a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail looks a user up by college email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("college_email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail reports whether email is already registered.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return rowExists(ctx, r.db, "users", "college_email", email)
}

// Exists reports whether a user with id exists.
func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	return rowExists(ctx, r.db, "users", "user_id", id)
}

// List returns every user ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Order("user_id").Find(&users).Error
	return users, err
}

// MarkProfileComplete flags the user's profile as filled in.
func (r *UserRepository) MarkProfileComplete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", id).Update("is_profile_complete", true).Error
}
