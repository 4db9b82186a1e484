package handler

import (
	"projtrack/internal/dto"
	"projtrack/internal/service"
	"projtrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves /projects.
type ProjectHandler struct {
	projectService *service.ProjectService
	errs           *ErrorResponder
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(projectService *service.ProjectService, errs *ErrorResponder) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, errs: errs}
}

// List returns every project.
func (h *ProjectHandler) List(c *gin.Context) {
	rows, err := h.projectService.List(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.NewProjectResponses(rows))
}

// ListByOwner returns the projects of :owner_id.
func (h *ProjectHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := h.errs.pathID(c, "owner_id")
	if !ok {
		return
	}

	rows, err := h.projectService.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.NewProjectResponses(rows))
}

func (h *ProjectHandler) Names(c *gin.Context) {
	names, err := h.projectService.Names(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, names)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := h.errs.pathID(c, "project_id")
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.NewProjectResponse(project))
}

// Create adds a project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	id, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.Created(c, dto.CreateProjectResponse{Message: "Project added successfully!", ProjectID: id})
}

// Update partially updates :project_id.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := h.errs.pathID(c, "project_id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.UpdateProjectResponse{
		Message: "Project updated successfully",
		Project: dto.NewProjectResponse(project),
	})
}
