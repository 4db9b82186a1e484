package handler

import (
	"projtrack/internal/dto"
	"projtrack/internal/service"
	"projtrack/internal/utils"

	"github.com/gin-gonic/gin"
)

// FacultyHandler serves /faculty.
type FacultyHandler struct {
	facultyService *service.FacultyService
	errs           *ErrorResponder
}

// NewFacultyHandler creates a FacultyHandler.
func NewFacultyHandler(facultyService *service.FacultyService, errs *ErrorResponder) *FacultyHandler {
	return &FacultyHandler{facultyService: facultyService, errs: errs}
}

func (h *FacultyHandler) List(c *gin.Context) {
	rows, err := h.facultyService.List(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, rows)
}

func (h *FacultyHandler) Names(c *gin.Context) {
	names, err := h.facultyService.Names(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, names)
}

// GetByUserID fetches the profile owned by :user_id.
func (h *FacultyHandler) GetByUserID(c *gin.Context) {
	userID, ok := h.errs.pathID(c, "user_id")
	if !ok {
		return
	}

	faculty, err := h.facultyService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, faculty)
}

// GetByID fetches the profile with :faculty_id.
func (h *FacultyHandler) GetByID(c *gin.Context) {
	id, ok := h.errs.pathID(c, "faculty_id")
	if !ok {
		return
	}

	faculty, err := h.facultyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, faculty)
}

func (h *FacultyHandler) Create(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	id, err := h.facultyService.Create(c.Request.Context(), &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.Created(c, gin.H{"message": "Faculty added successfully!", "faculty_id": id})
}

// UpdateByUserID partially updates the profile owned by :user_id and returns it.
func (h *FacultyHandler) UpdateByUserID(c *gin.Context) {
	userID, ok := h.errs.pathID(c, "user_id")
	if !ok {
		return
	}
	var req dto.UpdateFacultyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	faculty, err := h.facultyService.UpdateByUserID(c.Request.Context(), userID, &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, faculty)
}

// StudentHandler serves /students.
type StudentHandler struct {
	studentService *service.StudentService
	errs           *ErrorResponder
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(studentService *service.StudentService, errs *ErrorResponder) *StudentHandler {
	return &StudentHandler{studentService: studentService, errs: errs}
}

func (h *StudentHandler) List(c *gin.Context) {
	rows, err := h.studentService.List(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.NewStudentResponses(rows))
}

func (h *StudentHandler) Names(c *gin.Context) {
	names, err := h.studentService.Names(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, names)
}

// GetByUserID fetches the profile owned by :user_id.
func (h *StudentHandler) GetByUserID(c *gin.Context) {
	userID, ok := h.errs.pathID(c, "user_id")
	if !ok {
		return
	}

	student, err := h.studentService.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.NewStudentResponse(student))
}

// GetByID fetches the profile with :student_id.
func (h *StudentHandler) GetByID(c *gin.Context) {
	id, ok := h.errs.pathID(c, "student_id")
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.NewStudentResponse(student))
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	id, err := h.studentService.Create(c.Request.Context(), &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.Created(c, gin.H{"message": "Student added successfully!", "student_id": id})
}

// UpdateByUserID partially updates the profile owned by :user_id.
func (h *StudentHandler) UpdateByUserID(c *gin.Context) {
	userID, ok := h.errs.pathID(c, "user_id")
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Bind(c, err)
		return
	}

	student, err := h.studentService.UpdateByUserID(c.Request.Context(), userID, &req)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	utils.OK(c, dto.UpdateStudentResponse{
		Message: "Student profile updated successfully",
		Student: dto.NewStudentResponse(student),
	})
}
