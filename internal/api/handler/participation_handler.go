package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/service"
	"campus-events/backend/pkg/response"
)

// ParticipationHandler 报名/签到/反馈 HTTP 处理器
type ParticipationHandler struct {
	participationSvc service.ParticipationService
}

// NewParticipationHandler 创建 ParticipationHandler
func NewParticipationHandler(participationSvc service.ParticipationService) *ParticipationHandler {
	return &ParticipationHandler{participationSvc: participationSvc}
}

// Register 活动报名
// POST /register
func (h *ParticipationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !BindJSON(c, &req) {
		return
	}

	if err := h.participationSvc.Register(c.Request.Context(), &req); err != nil {
		h.handleParticipationError(c, err)
		return
	}

	response.Message(c, "registered")
}

// RecordAttendance 签到
// POST /attendance
func (h *ParticipationHandler) RecordAttendance(c *gin.Context) {
	var req dto.AttendanceRequest
	if !BindJSON(c, &req) {
		return
	}

	if err := h.participationSvc.RecordAttendance(c.Request.Context(), &req); err != nil {
		h.handleParticipationError(c, err)
		return
	}

	response.Message(c, "attendance recorded")
}

// RecordFeedback 活动反馈
// POST /feedback
func (h *ParticipationHandler) RecordFeedback(c *gin.Context) {
	var req dto.FeedbackRequest
	if !BindJSON(c, &req) {
		return
	}

	if err := h.participationSvc.RecordFeedback(c.Request.Context(), &req); err != nil {
		// 反馈接口对无效引用使用独立的提示文案
		if errors.Is(err, service.ErrInvalidReference) {
			response.BadRequest(c, response.CodeInvalidReference, "invalid ids or rating")
			return
		}
		h.handleParticipationError(c, err)
		return
	}

	response.Message(c, "feedback recorded")
}

// handleParticipationError 统一处理报名/签到/反馈业务错误
func (h *ParticipationHandler) handleParticipationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateOrInvalidReference):
		response.BadRequest(c, response.CodeDuplicateOrInvalid, "already registered or invalid ids")
	case errors.Is(err, service.ErrInvalidReference):
		response.BadRequest(c, response.CodeInvalidReference, "invalid ids")
	case errors.Is(err, service.ErrInvalidRating):
		response.BadRequest(c, response.CodeInvalidRating, "rating must be between 1 and 5")
	default:
		response.InternalError(c)
	}
}
