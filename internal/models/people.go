package models

import (
	"github.com/shopspring/decimal"
)

// Faculty is a faculty member's profile. One per user by convention; the schema
// does not enforce it.
type Faculty struct {
	ID              uint   `gorm:"primaryKey;column:faculty_id" json:"faculty_id"`
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	Name            string `gorm:"size:255;not null" json:"name"`
	DepartmentID    uint   `gorm:"not null;index" json:"department_id"`
	Designation     string `gorm:"size:100" json:"designation"`
	Role            string `gorm:"size:100" json:"role"`
	PersonalEmail   string `gorm:"size:255" json:"personal_email"`
	PhoneNo         string `gorm:"size:15" json:"phone_no"`
	LinkedinProfile string `gorm:"size:255" json:"linkedin_profile"`
	GithubProfile   string `gorm:"size:255" json:"github_profile"`
	Image           []byte `json:"image,omitempty"`

	// relations
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

func (Faculty) TableName() string {
	return "faculty"
}

// Student is a student's profile.
type Student struct {
	ID              uint                `gorm:"primaryKey;column:student_id" json:"student_id"`
	UserID          uint                `gorm:"not null;index" json:"user_id"`
	Name            string              `gorm:"size:255;not null" json:"name"`
	USN             string              `gorm:"column:usn;uniqueIndex;size:20;not null" json:"usn"`
	DepartmentID    uint                `gorm:"not null;index" json:"department_id"`
	CGPA            decimal.NullDecimal `gorm:"column:cgpa;type:numeric(4,2)" json:"cgpa"`
	PersonalEmail   string              `gorm:"size:255" json:"personal_email"`
	PhoneNo         string              `gorm:"size:15" json:"phone_no"`
	LinkedinProfile string              `gorm:"size:255" json:"linkedin_profile"`
	GithubProfile   string              `gorm:"size:255" json:"github_profile"`
	Image           []byte              `json:"image,omitempty"`

	// relations
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

func (Student) TableName() string {
	return "students"
}
