package model

// College 学院表 — 对应 colleges
type College struct {
	CollegeID int64  `gorm:"primaryKey;autoIncrement" json:"college_id"`
	Name      string `gorm:"type:text;not null"       json:"name"`
	CreatedModel
}

// TableName 指定表名
func (College) TableName() string { return "colleges" }
