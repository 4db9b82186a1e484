package handler

import (
	"errors"
	"net/http"
	"strconv"

	"projtrack/internal/service"
	"projtrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponder writes service failures as {error, details?} responses.
type ErrorResponder struct {
	exposeDetails bool
}

// NewErrorResponder creates an ErrorResponder. With exposeDetails the text of internal
// errors is returned to the client.
func NewErrorResponder(exposeDetails bool) *ErrorResponder {
	return &ErrorResponder{exposeDetails: exposeDetails}
}

// Write maps err to a status and body.
func (r *ErrorResponder) Write(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrMissingField),
		errors.Is(err, service.ErrInvalidReference):
		utils.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		details := ""
		if r.exposeDetails {
			details = err.Error()
		}
		utils.InternalError(c, "An error occurred", details)
	}
}

// Bind writes a 400 for a request body that failed to decode or validate.
func (r *ErrorResponder) Bind(c *gin.Context, err error) {
	utils.ErrorResponse(c, http.StatusBadRequest, utils.FormatValidationError(err), "")
}

// pathID reads a positive integer path parameter, answering 400 when it is malformed.
func (r *ErrorResponder) pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.BadRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
