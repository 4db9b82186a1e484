package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"projtrack/internal/dto"
	"projtrack/internal/service"
	"projtrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// LinkHandler serves the association endpoints. Each method returns the handler for
// one association.
type LinkHandler struct {
	linkService *service.LinkService
	errs        *ErrorResponder
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(linkService *service.LinkService, errs *ErrorResponder) *LinkHandler {
	return &LinkHandler{linkService: linkService, errs: errs}
}

// List answers GET /{link}/:owner_id with the raw edges.
func (h *LinkHandler) List(a service.Association) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := h.errs.pathID(c, "owner_id")
		if !ok {
			return
		}

		links, err := h.linkService.List(c.Request.Context(), a, ownerID)
		if err != nil {
			h.errs.Write(c, err)
			return
		}

		out := make([]gin.H, 0, len(links))
		for _, l := range links {
			out = append(out, gin.H{
				a.Spec.OwnerColumn:  l.OwnerID,
				a.Spec.TargetColumn: l.TargetID,
			})
		}
		utils.OK(c, out)
	}
}

// ReplaceByPath answers PUT /{link}/:owner_id with body {<targets>_ids: [...]}.
func (h *LinkHandler) ReplaceByPath(a service.Association) gin.HandlerFunc {
	return func(c *gin.Context) {
		ownerID, ok := h.errs.pathID(c, "owner_id")
		if !ok {
			return
		}
		body, ok := h.bindBody(c)
		if !ok {
			return
		}
		h.replace(c, a, ownerID, body[a.TargetsField], http.StatusOK)
	}
}

// ReplaceByBody answers POST /{link} with body {<owner>_id, <targets>_ids: [...]}.
func (h *LinkHandler) ReplaceByBody(a service.Association) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := h.bindBody(c)
		if !ok {
			return
		}
		ownerID, err := decodeOwnerID(a, body[a.OwnerField])
		if err != nil {
			h.errs.Write(c, err)
			return
		}
		h.replace(c, a, ownerID, body[a.TargetsField], http.StatusCreated)
	}
}

// SwapTechnology answers the legacy PUT /student_technologies.
//
// Deprecated: use PUT /student_technologies/:owner_id.
func (h *LinkHandler) SwapTechnology(c *gin.Context) {
	var req dto.SwapTechnologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	if err := h.linkService.SwapTechnology(c.Request.Context(), &req); err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.MessageResponse{Message: "Student technology updated successfully"})
}

func (h *LinkHandler) replace(c *gin.Context, a service.Association, ownerID uint, rawIDs json.RawMessage, status int) {
	linked, err := h.linkService.Replace(c.Request.Context(), a, ownerID, rawIDs)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(status, gin.H{
		"message":     a.OwnerLabel + " " + a.ResultField + " updated successfully",
		a.ResultField: linked,
	})
}

func (h *LinkHandler) bindBody(c *gin.Context) (map[string]json.RawMessage, bool) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		h.errs.Bind(c, err)
		return nil, false
	}
	return body, true
}

// decodeOwnerID reads the owner id from a request body. Absent or null yields zero,
// which the service reports as a missing field.
func decodeOwnerID(a service.Association, raw json.RawMessage) (uint, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, nil
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil || id <= 0 {
		return 0, &service.Error{
			Kind:    service.ErrInvalidInput,
			Message: a.OwnerField + " must be a positive integer",
		}
	}
	return uint(id), nil
}
