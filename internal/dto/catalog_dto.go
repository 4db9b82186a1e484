package dto

// CreateDepartmentRequest creates a department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreateTechnologyRequest creates a technology.
type CreateTechnologyRequest struct {
	Name string `json:"technology_name" binding:"required,max=255"`
}

// CreateThemeRequest creates a theme.
type CreateThemeRequest struct {
	Name string `json:"theme_name" binding:"required,max=255"`
}

// TechnologyResponse keeps the capitalised keys existing clients read.
type TechnologyResponse struct {
	ID   uint   `json:"Technology_id"`
	Name string `json:"Technology_Name"`
}

// ThemeResponse keeps the capitalised keys existing clients read.
type ThemeResponse struct {
	ID   uint   `json:"Theme_id"`
	Name string `json:"Theme_Name"`
}
