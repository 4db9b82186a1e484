package models

import (
	"time"
)

// User roles.
const (
	RoleFaculty = "Faculty"
	RoleStudent = "Student"
)

// User is the root identity every Student and Faculty row points at.
type User struct {
	ID                uint      `gorm:"primaryKey;column:user_id" json:"user_id"`
	Role              string    `gorm:"size:20;not null;default:'Student'" json:"role"`
	CollegeEmail      string    `gorm:"uniqueIndex;size:255;not null" json:"college_email"`
	HashedPassword    string    `gorm:"size:255;not null" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	IsProfileComplete bool      `gorm:"default:false" json:"is_profile_complete"`
}

// TableName pins the table name.
func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the stored enum values.
func ValidRole(role string) bool {
	return role == RoleFaculty || role == RoleStudent
}
