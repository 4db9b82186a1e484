package handler

import (
	"strings"

	"projtrack/internal/dto"
	"projtrack/internal/models"
	"projtrack/internal/repository"
	"projtrack/internal/service"
	"projtrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves a lookup table: list, create and names.
type CatalogHandler[T repository.CatalogEntity] struct {
	svc    *service.CatalogService[T]
	errs   *ErrorResponder
	render func([]T) interface{}
	// bindName decodes the create body and returns the requested name.
	bindName func(c *gin.Context) (string, error)
}

// NewDepartmentHandler serves /departments.
func NewDepartmentHandler(svc *service.CatalogService[models.Department], errs *ErrorResponder) *CatalogHandler[models.Department] {
	return &CatalogHandler[models.Department]{
		svc:    svc,
		errs:   errs,
		render: func(rows []models.Department) interface{} { return rows },
		bindName: func(c *gin.Context) (string, error) {
			var req dto.CreateDepartmentRequest
			err := c.ShouldBindJSON(&req)
			return req.Name, err
		},
	}
}

// NewTechnologyHandler serves /technologies.
func NewTechnologyHandler(svc *service.CatalogService[models.Technology], errs *ErrorResponder) *CatalogHandler[models.Technology] {
	return &CatalogHandler[models.Technology]{
		svc:  svc,
		errs: errs,
		render: func(rows []models.Technology) interface{} {
			return dto.NewTechnologyResponses(rows)
		},
		bindName: func(c *gin.Context) (string, error) {
			var req dto.CreateTechnologyRequest
			err := c.ShouldBindJSON(&req)
			return req.Name, err
		},
	}
}

// NewThemeHandler serves /themes.
func NewThemeHandler(svc *service.CatalogService[models.Theme], errs *ErrorResponder) *CatalogHandler[models.Theme] {
	return &CatalogHandler[models.Theme]{
		svc:    svc,
		errs:   errs,
		render: func(rows []models.Theme) interface{} { return dto.NewThemeResponses(rows) },
		bindName: func(c *gin.Context) (string, error) {
			var req dto.CreateThemeRequest
			err := c.ShouldBindJSON(&req)
			return req.Name, err
		},
	}
}

func (h *CatalogHandler[T]) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, h.render(rows))
}

func (h *CatalogHandler[T]) Names(c *gin.Context) {
	names, err := h.svc.Names(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, names)
}

// Create answers {message, <entity>_id}.
func (h *CatalogHandler[T]) Create(c *gin.Context) {
	name, err := h.bindName(c)
	if err != nil {
		h.errs.Bind(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), name)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	label := h.svc.Label()
	idKey := strings.ToLower(label) + "_id"
	utils.Created(c, gin.H{
		"message": label + " added successfully!",
		idKey:     id,
	})
}
