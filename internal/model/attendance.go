package model

// 签到状态
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Attendance 签到表 — 对应 attendance
// 以 (student_id, event_id) 为键覆盖写入，保留最后一次状态
type Attendance struct {
	AttendanceID int64  `gorm:"primaryKey;autoIncrement"                          json:"attendance_id"`
	StudentID    int64  `gorm:"not null;uniqueIndex:uq_attendance_student_event" json:"student_id"`
	EventID      int64  `gorm:"not null;uniqueIndex:uq_attendance_student_event" json:"event_id"`
	Status       string `gorm:"type:text;not null"                                json:"status"`
	TimestampModel
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendance" }
