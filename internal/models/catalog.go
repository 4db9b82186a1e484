package models

// Department is an academic department.
type Department struct {
	ID   uint   `gorm:"primaryKey;column:department_id" json:"department_id"`
	Name string `gorm:"uniqueIndex;size:100;not null" json:"name"`
}

func (Department) TableName() string {
	return "departments"
}

// Technology is a skill or tool that students, faculty and projects link to.
type Technology struct {
	ID   uint   `gorm:"primaryKey;column:technology_id" json:"technology_id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}

func (Technology) TableName() string {
	return "technologies"
}

// Theme is a project theme.
type Theme struct {
	ID   uint   `gorm:"primaryKey;column:theme_id" json:"theme_id"`
	Name string `gorm:"uniqueIndex;size:255;not null" json:"name"`
}

func (Theme) TableName() string {
	return "themes"
}

// NameEntry is the lightweight id/name projection used to populate selection lists.
type NameEntry struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Link is one join-table edge without enrichment.
type Link struct {
	OwnerID  uint
	TargetID uint
}
