package handler

import (
	"github.com/gin-gonic/gin"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/service"
	"campus-events/backend/pkg/response"
)

// EventHandler 活动模块 HTTP 处理器
type EventHandler struct {
	eventSvc service.EventService
}

// NewEventHandler 创建 EventHandler
func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// CreateEvent 创建活动
// POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if !BindJSON(c, &req) {
		return
	}

	result, err := h.eventSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleCollegeRefError(c, err)
		return
	}

	response.Created(c, result)
}

// ListEvents 全部活动
// GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	result, err := h.eventSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
