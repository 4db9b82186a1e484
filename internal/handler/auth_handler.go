package handler

import (
	"net/http"

	"projtrack/internal/dto"
	"projtrack/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves sign-up and login.
type AuthHandler struct {
	authService *service.AuthService
	errs        *ErrorResponder
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *service.AuthService, errs *ErrorResponder) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		errs:        errs,
	}
}

// Signup registers a user.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	userID, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: "Sign-Up successful!", UserID: userID})
}

// Login checks credentials.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	userID, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: "Login successful!", UserID: userID})
}
