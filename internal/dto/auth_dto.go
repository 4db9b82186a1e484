package dto

// SignupRequest is the sign-up payload. Role defaults to Student.
type SignupRequest struct {
	CollegeEmail string `json:"college_email" binding:"required,email,max=255"`
	Password     string `json:"password" binding:"required,max=72"`
	Role         string `json:"role" binding:"omitempty,oneof=Faculty Student"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	CollegeEmail string `json:"college_email" binding:"required"`
	Password     string `json:"password" binding:"required"`
}

// AuthResponse answers both signup and login.
type AuthResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}
