package dto

import "encoding/json"

// CreateFacultyRequest completes a faculty profile.
type CreateFacultyRequest struct {
	UserID          uint   `json:"user_id" binding:"required"`
	Name            string `json:"name" binding:"required,max=255"`
	DepartmentID    uint   `json:"department_id" binding:"required"`
	Designation     string `json:"designation" binding:"max=100"`
	Role            string `json:"role" binding:"max=100"`
	PersonalEmail   string `json:"personal_email" binding:"max=255"`
	PhoneNo         string `json:"phone_no" binding:"max=15"`
	LinkedinProfile string `json:"linkedin_profile" binding:"max=255"`
	GithubProfile   string `json:"github_profile" binding:"max=255"`
	Image           []byte `json:"image"`
}

// UpdateFacultyRequest is a partial faculty update; nil fields are left alone.
type UpdateFacultyRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=255"`
	DepartmentID    *uint   `json:"department_id"`
	Designation     *string `json:"designation" binding:"omitempty,max=100"`
	Role            *string `json:"role" binding:"omitempty,max=100"`
	PersonalEmail   *string `json:"personal_email" binding:"omitempty,max=255"`
	PhoneNo         *string `json:"phone_no" binding:"omitempty,max=15"`
	LinkedinProfile *string `json:"linkedin_profile" binding:"omitempty,max=255"`
	GithubProfile   *string `json:"github_profile" binding:"omitempty,max=255"`
	Image           []byte  `json:"image"`
}

// CreateStudentRequest completes a student profile. CGPA is kept raw so that a
// malformed value is reported as invalid input rather than a decode failure.
type CreateStudentRequest struct {
	UserID          uint            `json:"user_id" binding:"required"`
	Name            string          `json:"name" binding:"required,max=255"`
	USN             string          `json:"usn" binding:"required,max=20"`
	DepartmentID    uint            `json:"department_id" binding:"required"`
	CGPA            json.RawMessage `json:"cgpa"`
	PersonalEmail   string          `json:"personal_email" binding:"max=255"`
	PhoneNo         string          `json:"phone_no" binding:"max=15"`
	LinkedinProfile string          `json:"linkedin_profile" binding:"max=255"`
	GithubProfile   string          `json:"github_profile" binding:"max=255"`
	Image           []byte          `json:"image"`
}

// UpdateStudentRequest is a partial student update.
type UpdateStudentRequest struct {
	Name            *string         `json:"name" binding:"omitempty,max=255"`
	PersonalEmail   *string         `json:"personal_email" binding:"omitempty,max=255"`
	PhoneNo         *string         `json:"phone_no" binding:"omitempty,max=15"`
	LinkedinProfile *string         `json:"linkedin_profile" binding:"omitempty,max=255"`
	GithubProfile   *string         `json:"github_profile" binding:"omitempty,max=255"`
	CGPA            json.RawMessage `json:"cgpa"`
	Image           []byte          `json:"image"`
}

// StudentResponse renders a student. CGPA is a two decimal string or null.
type StudentResponse struct {
	StudentID       uint    `json:"student_id"`
	UserID          uint    `json:"user_id"`
	Name            string  `json:"name"`
	USN             string  `json:"usn"`
	DepartmentID    uint    `json:"department_id"`
	CGPA            *string `json:"cgpa"`
	PersonalEmail   string  `json:"personal_email"`
	PhoneNo         string  `json:"phone_no"`
	LinkedinProfile string  `json:"linkedin_profile"`
	GithubProfile   string  `json:"github_profile"`
	Image           []byte  `json:"image,omitempty"`
}

// UpdateStudentResponse answers a student update.
type UpdateStudentResponse struct {
	Message string          `json:"message"`
	Student StudentResponse `json:"student"`
}
