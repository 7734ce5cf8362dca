package dto

// ── 报表模块 DTO ──

// EventReportResponse 单个活动统计
// 无签到记录时 AttendancePercentage 为 null，无反馈时 AverageFeedback 为 null
type EventReportResponse struct {
	Event                EventResponse `json:"event"`
	TotalRegistrations   int64         `json:"total_registrations"`
	AttendancePercentage *float64      `json:"attendance_percentage"`
	AverageFeedback      *float64      `json:"average_feedback"`
}

// PopularityItem 活动热度条目
type PopularityItem struct {
	EventResponse
	TotalRegistrations int64 `json:"total_registrations"`
}

// PopularityResponse 活动热度排行
type PopularityResponse struct {
	Events []PopularityItem `json:"events"`
}

// StudentReportResponse 学生参与统计
type StudentReportResponse struct {
	StudentID      int64  `json:"student_id"`
	Name           string `json:"name"`
	EventsAttended int64  `json:"events_attended"`
}

// TopActiveItem 活跃学生条目
type TopActiveItem struct {
	StudentID int64  `json:"student_id"`
	Name      string `json:"name"`
	Attended  int64  `json:"attended"`
}

// TopActiveResponse 活跃学生排行
type TopActiveResponse struct {
	TopActive []TopActiveItem `json:"top_active"`
}
