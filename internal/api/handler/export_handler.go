package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/service"
	"campus-events/backend/pkg/response"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	icsContentType  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportPopularity 导出活动热度排行
// GET /reports/popularity/export
func (h *ExportHandler) ExportPopularity(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportPopularity(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	// 设置下载响应头
	encodedFilename := url.PathEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ExportCalendar 导出活动日历
// GET /events/calendar.ics?type=T
func (h *ExportHandler) ExportCalendar(c *gin.Context) {
	var req dto.EventListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeValidation, "invalid query")
		return
	}

	buf, filename, err := h.exportSvc.ExportCalendar(c.Request.Context(), req.Type)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", "inline; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, icsContentType, buf.Bytes())
}
