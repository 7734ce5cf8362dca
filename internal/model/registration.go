package model

// Registration 活动报名表 — 对应 registrations
// (student_id, event_id) 唯一，重复报名由唯一约束拒绝
type Registration struct {
	RegID     int64 `gorm:"column:reg_id;primaryKey;autoIncrement"               json:"reg_id"`
	StudentID int64 `gorm:"not null;uniqueIndex:uq_registrations_student_event" json:"student_id"`
	EventID   int64 `gorm:"not null;uniqueIndex:uq_registrations_student_event" json:"event_id"`
	CreatedModel
}

// TableName 指定表名
func (Registration) TableName() string { return "registrations" }
