package dto

// SwapTechnologyRequest rewrites one student technology edge.
type SwapTechnologyRequest struct {
	StudentID       uint `json:"student_id"`
	OldTechnologyID uint `json:"old_technology_id"`
	NewTechnologyID uint `json:"new_technology_id"`
}
