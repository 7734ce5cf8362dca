package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/service"
	"campus-events/backend/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// CreateStudent 创建学生
// POST /students
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !BindJSON(c, &req) {
		return
	}

	result, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleCollegeRefError(c, err)
		return
	}

	response.Created(c, result)
}

// handleCollegeRefError 学生/活动创建时的学院引用错误
func handleCollegeRefError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCollegeNotFound):
		response.BadRequest(c, response.CodeCollegeNotFound, "invalid college_id")
	default:
		response.InternalError(c)
	}
}
