package dto

import "github.com/shopspring/decimal"

// CreateProjectRequest creates a project. Omitted optional fields take their defaults.
type CreateProjectRequest struct {
	Name                  string           `json:"name" binding:"required,max=255"`
	Description           *string          `json:"description"`
	Budget                *decimal.Decimal `json:"budget"`
	Status                *string          `json:"status" binding:"omitempty,oneof=Ongoing Completed Proposed"`
	StudentsInvolvedCount *int             `json:"students_involved_count" binding:"omitempty,min=0"`
	StartDate             *string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate               *string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	GithubLink            *string          `json:"github_link" binding:"omitempty,max=255"`
	Image                 []byte           `json:"image"`
	OwnerID               uint             `json:"owner_id" binding:"required"`
}

// UpdateProjectRequest is a partial project update.
type UpdateProjectRequest struct {
	Name                  *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Description           *string          `json:"description"`
	Budget                *decimal.Decimal `json:"budget"`
	Status                *string          `json:"status" binding:"omitempty,oneof=Ongoing Completed Proposed"`
	StudentsInvolvedCount *int             `json:"students_involved_count" binding:"omitempty,min=0"`
	StartDate             *string          `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate               *string          `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	GithubLink            *string          `json:"github_link" binding:"omitempty,max=255"`
	Image                 []byte           `json:"image"`
	OwnerID               *uint            `json:"owner_id"`
}

// ProjectResponse renders a project. Budget is a two decimal string and dates are
// YYYY-MM-DD or null.
type ProjectResponse struct {
	ProjectID             uint    `json:"project_id"`
	Name                  string  `json:"name"`
	Description           string  `json:"description"`
	Budget                string  `json:"budget"`
	Status                string  `json:"status"`
	StudentsInvolvedCount int     `json:"students_involved_count"`
	StartDate             *string `json:"start_date"`
	EndDate               *string `json:"end_date"`
	GithubLink            string  `json:"github_link"`
	Image                 []byte  `json:"image,omitempty"`
	OwnerID               uint    `json:"owner_id"`
}

// CreateProjectResponse acknowledges a created project.
type CreateProjectResponse struct {
	Message   string `json:"message"`
	ProjectID uint   `json:"project_id"`
}

// UpdateProjectResponse answers a project update.
type UpdateProjectResponse struct {
	Message string          `json:"message"`
	Project ProjectResponse `json:"project"`
}
