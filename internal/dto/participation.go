package dto

// ── 报名 / 签到 / 反馈 DTO ──

// RegisterRequest 活动报名请求
type RegisterRequest struct {
	StudentID *FlexInt `json:"student_id" binding:"required"`
	EventID   *FlexInt `json:"event_id"   binding:"required"`
}

// AttendanceRequest 签到请求
type AttendanceRequest struct {
	StudentID *FlexInt `json:"student_id" binding:"required"`
	EventID   *FlexInt `json:"event_id"   binding:"required"`
	Status    string   `json:"status"     binding:"required,oneof=present absent"`
}

// FeedbackRequest 反馈请求
// 评分范围由 Service 按 feature.strict_rating 校验
type FeedbackRequest struct {
	StudentID *FlexInt `json:"student_id" binding:"required"`
	EventID   *FlexInt `json:"event_id"   binding:"required"`
	Rating    *FlexInt `json:"rating"     binding:"required"`
}
