package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes body with status 200.
func OK(c *gin.Context, body interface{}) {
	c.JSON(http.StatusOK, body)
}

// Created writes body with status 201.
func Created(c *gin.Context, body interface{}) {
	c.JSON(http.StatusCreated, body)
}

// ErrorResponse writes an {error, details?} body.
func ErrorResponse(c *gin.Context, code int, message, details string) {
	body := gin.H{"error": message}
	if details != "" {
		body["details"] = details
	}
	c.AbortWithStatusJSON(code, body)
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message, "")
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message, "")
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message, "")
}

// InternalError 500
func InternalError(c *gin.Context, message, details string) {
	ErrorResponse(c, http.StatusInternalServerError, message, details)
}
