package dto

// ── 活动模块 DTO ──

// CreateEventRequest 创建活动请求
// Cancelled 可省略，缺省为 0
type CreateEventRequest struct {
	Title     string   `json:"title"      binding:"required"`
	Type      string   `json:"type"       binding:"required"`
	Date      string   `json:"date"       binding:"required"`
	CollegeID *FlexInt `json:"college_id" binding:"required"`
	Cancelled *FlexInt `json:"cancelled"`
}

// EventListRequest 活动列表查询参数
type EventListRequest struct {
	Type string `form:"type"`
}

// EventResponse 活动基本信息
type EventResponse struct {
	EventID   int64  `json:"event_id"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	CollegeID int64  `json:"college_id"`
}

// EventDetailResponse 活动信息（含取消标记）
type EventDetailResponse struct {
	EventResponse
	Cancelled bool `json:"cancelled"`
}

// EventListResponse 活动列表
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// EventDetailListResponse 活动列表（含取消标记）
type EventDetailListResponse struct {
	Events []EventDetailResponse `json:"events"`
}
