package model

// Event 活动表 — 对应 events
// Date 保持调用方传入的原始字符串（通常为 YYYY-MM-DD）
type Event struct {
	EventID   int64  `gorm:"primaryKey;autoIncrement" json:"event_id"`
	Title     string `gorm:"type:text;not null"       json:"title"`
	Type      string `gorm:"type:text;not null;index" json:"type"`
	Date      string `gorm:"type:text;not null"       json:"date"`
	CollegeID int64  `gorm:"not null"                 json:"college_id"`
	Cancelled bool   `gorm:"not null;default:false"   json:"cancelled"`
	CreatedModel
}

// TableName 指定表名
func (Event) TableName() string { return "events" }
