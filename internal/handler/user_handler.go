package handler

import (
	"projtrack/internal/dto"
	"projtrack/internal/service"
	"projtrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves /users.
type UserHandler struct {
	userService *service.UserService
	errs        *ErrorResponder
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userService *service.UserService, errs *ErrorResponder) *UserHandler {
	return &UserHandler{userService: userService, errs: errs}
}

// List returns every user.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, users)
}

// Get returns one user.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.errs.pathID(c, "user_id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, user)
}

// Create adds a user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	id, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.Created(c, dto.CreateUserResponse{Message: "User added successfully!", UserID: id})
}
