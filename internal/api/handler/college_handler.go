package handler

import (
	"github.com/gin-gonic/gin"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/service"
	"campus-events/backend/pkg/response"
)

// CollegeHandler 学院模块 HTTP 处理器
type CollegeHandler struct {
	collegeSvc service.CollegeService
}

// NewCollegeHandler 创建 CollegeHandler
func NewCollegeHandler(collegeSvc service.CollegeService) *CollegeHandler {
	return &CollegeHandler{collegeSvc: collegeSvc}
}

// CreateCollege 创建学院
// POST /colleges
func (h *CollegeHandler) CreateCollege(c *gin.Context) {
	var req dto.CreateCollegeRequest
	if !BindJSON(c, &req) {
		return
	}

	result, err := h.collegeSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListColleges 学院列表
// GET /colleges
func (h *CollegeHandler) ListColleges(c *gin.Context) {
	result, err := h.collegeSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
