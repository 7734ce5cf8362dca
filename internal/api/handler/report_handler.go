package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/service"
	"campus-events/backend/pkg/response"
)

// ReportHandler 报表模块 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// EventReport 单个活动统计
// GET /reports/event/:event_id
func (h *ReportHandler) EventReport(c *gin.Context) {
	eventID, ok := ParseIDParam(c, "event_id")
	if !ok {
		response.NotFound(c, response.CodeEventNotFound, "event not found")
		return
	}

	result, err := h.reportSvc.EventReport(c.Request.Context(), eventID)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, result)
}

// Popularity 活动热度排行
// GET /reports/popularity
func (h *ReportHandler) Popularity(c *gin.Context) {
	result, err := h.reportSvc.Popularity(c.Request.Context())
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, result)
}

// StudentReport 学生参与统计
// GET /reports/student/:student_id
func (h *ReportHandler) StudentReport(c *gin.Context) {
	studentID, ok := ParseIDParam(c, "student_id")
	if !ok {
		response.NotFound(c, response.CodeStudentNotFound, "student not found")
		return
	}

	result, err := h.reportSvc.StudentParticipation(c.Request.Context(), studentID)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, result)
}

// TopActive 活跃学生排行
// GET /reports/top-active?limit=N
func (h *ReportHandler) TopActive(c *gin.Context) {
	// 未传 limit 时由 service 取默认值
	var limit *int
	if raw, ok := c.GetQuery("limit"); ok && raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, response.CodeValidation, "limit must be an integer")
			return
		}
		limit = &n
	}

	result, err := h.reportSvc.TopActive(c.Request.Context(), limit)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, result)
}

// FilterEvents 按类型筛选活动
// GET /reports/events?type=T
func (h *ReportHandler) FilterEvents(c *gin.Context) {
	var req dto.EventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeValidation, "invalid query")
		return
	}

	result, err := h.reportSvc.FilterEvents(c.Request.Context(), req.Type)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, result)
}

// handleReportError 统一处理报表模块业务错误
func (h *ReportHandler) handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.NotFound(c, response.CodeEventNotFound, "event not found")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, response.CodeStudentNotFound, "student not found")
	case errors.Is(err, service.ErrInvalidLimit):
		response.BadRequest(c, response.CodeValidation, "limit must be a positive integer")
	default:
		response.InternalError(c)
	}
}
