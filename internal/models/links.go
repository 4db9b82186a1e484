package models

// Join tables. Each row is one many-to-many edge keyed by both ids; the belongs-to
// fields exist so AutoMigrate emits the foreign key constraints.

// StudentTechnology links a student to a technology.
type StudentTechnology struct {
	StudentID    uint `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	TechnologyID uint `gorm:"primaryKey;autoIncrement:false" json:"technology_id"`

	Student    Student    `gorm:"foreignKey:StudentID" json:"-"`
	Technology Technology `gorm:"foreignKey:TechnologyID" json:"-"`
}

func (StudentTechnology) TableName() string {
	return "student_technologies"
}

// FacultyTechnology links a faculty member to a technology.
type FacultyTechnology struct {
	FacultyID    uint `gorm:"primaryKey;autoIncrement:false" json:"faculty_id"`
	TechnologyID uint `gorm:"primaryKey;autoIncrement:false" json:"technology_id"`

	Faculty    Faculty    `gorm:"foreignKey:FacultyID" json:"-"`
	Technology Technology `gorm:"foreignKey:TechnologyID" json:"-"`
}

func (FacultyTechnology) TableName() string {
	return "faculty_technologies"
}

// ProjectTechnology links a project to a technology.
type ProjectTechnology struct {
	ProjectID    uint `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	TechnologyID uint `gorm:"primaryKey;autoIncrement:false" json:"technology_id"`

	Project    Project    `gorm:"foreignKey:ProjectID" json:"-"`
	Technology Technology `gorm:"foreignKey:TechnologyID" json:"-"`
}

func (ProjectTechnology) TableName() string {
	return "project_technologies"
}

// ProjectTheme links a project to a theme.
type ProjectTheme struct {
	ProjectID uint `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	ThemeID   uint `gorm:"primaryKey;autoIncrement:false" json:"theme_id"`

	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	Theme   Theme   `gorm:"foreignKey:ThemeID" json:"-"`
}

func (ProjectTheme) TableName() string {
	return "project_themes"
}

// ProjectStudent assigns a student to a project.
type ProjectStudent struct {
	ProjectID uint `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	StudentID uint `gorm:"primaryKey;autoIncrement:false" json:"student_id"`

	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	Student Student `gorm:"foreignKey:StudentID" json:"-"`
}

func (ProjectStudent) TableName() string {
	return "project_students"
}

// ProjectFaculty assigns a faculty member to a project.
type ProjectFaculty struct {
	ProjectID uint `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	FacultyID uint `gorm:"primaryKey;autoIncrement:false" json:"faculty_id"`

	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	Faculty Faculty `gorm:"foreignKey:FacultyID" json:"-"`
}

func (ProjectFaculty) TableName() string {
	return "project_faculty"
}

// ProjectDepartment ties a project to a department.
type ProjectDepartment struct {
	ProjectID    uint `gorm:"primaryKey;autoIncrement:false" json:"project_id"`
	DepartmentID uint `gorm:"primaryKey;autoIncrement:false" json:"department_id"`

	Project    Project    `gorm:"foreignKey:ProjectID" json:"-"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"-"`
}

func (ProjectDepartment) TableName() string {
	return "project_departments"
}
