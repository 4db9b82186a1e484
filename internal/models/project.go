package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Project statuses.
const (
	ProjectStatusOngoing   = "Ongoing"
	ProjectStatusCompleted = "Completed"
	ProjectStatusProposed  = "Proposed"
)

// Project is a tracked academic project owned by a user.
type Project struct {
	ID                    uint            `gorm:"primaryKey;column:project_id" json:"project_id"`
	Name                  string          `gorm:"size:255;not null" json:"name"`
	Description           string          `gorm:"type:text" json:"description"`
	Budget                decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"budget"`
	Status                string          `gorm:"size:20;default:'Proposed'" json:"status"`
	StudentsInvolvedCount int             `gorm:"default:0" json:"students_involved_count"`
	StartDate             *datatypes.Date `json:"start_date"`
	EndDate               *datatypes.Date `json:"end_date"`
	GithubLink            string          `gorm:"size:255" json:"github_link"`
	Image                 []byte          `json:"image,omitempty"`
	OwnerID               uint            `gorm:"not null;index" json:"owner_id"`

	// relations
	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

func (Project) TableName() string {
	return "projects"
}

// ValidProjectStatus reports whether status is one of the stored enum values.
func ValidProjectStatus(status string) bool {
	switch status {
	case ProjectStatusOngoing, ProjectStatusCompleted, ProjectStatusProposed:
		return true
	}
	return false
}
