package dto

// CreateUserRequest creates a user directly. The password is hashed before storage.
type CreateUserRequest struct {
	CollegeEmail      string `json:"college_email" binding:"required,email,max=255"`
	Password          string `json:"password" binding:"required,max=72"`
	Role              string `json:"role" binding:"omitempty,oneof=Faculty Student"`
	IsProfileComplete bool   `json:"is_profile_complete"`
}

// CreateUserResponse acknowledges a created user.
type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}
