package model

// Student 学生表 — 对应 students
type Student struct {
	StudentID int64  `gorm:"primaryKey;autoIncrement"  json:"student_id"`
	Name      string `gorm:"type:text;not null"        json:"name"`
	Email     string `gorm:"type:text;not null"        json:"email"`
	CollegeID int64  `gorm:"not null;index"            json:"college_id"`
	CreatedModel
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
