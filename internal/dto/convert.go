package dto

import (
	"time"

	"projtrack/internal/models"

	"gorm.io/datatypes"
)

// DateLayout is the wire format of every date.
const DateLayout = "2006-01-02"

// NewStudentResponse renders s.
func NewStudentResponse(s *models.Student) StudentResponse {
	resp := StudentResponse{
		StudentID:       s.ID,
		UserID:          s.UserID,
		Name:            s.Name,
		USN:             s.USN,
		DepartmentID:    s.DepartmentID,
		PersonalEmail:   s.PersonalEmail,
		PhoneNo:         s.PhoneNo,
		LinkedinProfile: s.LinkedinProfile,
		GithubProfile:   s.GithubProfile,
		Image:           s.Image,
	}
	if s.CGPA.Valid {
		cgpa := s.CGPA.Decimal.StringFixed(2)
		resp.CGPA = &cgpa
	}
	return resp
}

// NewStudentResponses renders a list of students.
func NewStudentResponses(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, NewStudentResponse(&students[i]))
	}
	return out
}

// NewProjectResponse renders p.
func NewProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:             p.ID,
		Name:                  p.Name,
		Description:           p.Description,
		Budget:                p.Budget.StringFixed(2),
		Status:                p.Status,
		StudentsInvolvedCount: p.StudentsInvolvedCount,
		StartDate:             formatDate(p.StartDate),
		EndDate:               formatDate(p.EndDate),
		GithubLink:            p.GithubLink,
		Image:                 p.Image,
		OwnerID:               p.OwnerID,
	}
}

// NewProjectResponses renders a list of projects.
func NewProjectResponses(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}

// NewTechnologyResponses renders technologies with their legacy keys.
func NewTechnologyResponses(items []models.Technology) []TechnologyResponse {
	out := make([]TechnologyResponse, 0, len(items))
	for _, t := range items {
		out = append(out, TechnologyResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

// NewThemeResponses renders themes with their legacy keys.
func NewThemeResponses(items []models.Theme) []ThemeResponse {
	out := make([]ThemeResponse, 0, len(items))
	for _, t := range items {
		out = append(out, ThemeResponse{ID: t.ID, Name: t.Name})
	}
	return out
}

func formatDate(d *datatypes.Date) *string {
	if d == nil {
		return nil
	}
	s := time.Time(*d).Format(DateLayout)
	return &s
}
