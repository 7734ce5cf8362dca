package model

// Feedback 活动反馈表 — 对应 feedback
// 以 (student_id, event_id) 为键覆盖写入
type Feedback struct {
	FeedbackID int64 `gorm:"primaryKey;autoIncrement"                        json:"feedback_id"`
	StudentID  int64 `gorm:"not null;uniqueIndex:uq_feedback_student_event" json:"student_id"`
	EventID    int64 `gorm:"not null;uniqueIndex:uq_feedback_student_event" json:"event_id"`
	Rating     int   `gorm:"not null"                                        json:"rating"`
	TimestampModel
}

// TableName 指定表名
func (Feedback) TableName() string { return "feedback" }
