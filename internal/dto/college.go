package dto

// ── 学院模块 DTO ──

// CreateCollegeRequest 创建学院请求
type CreateCollegeRequest struct {
	Name string `json:"name" binding:"required"`
}

// CollegeResponse 学院信息
type CollegeResponse struct {
	CollegeID int64  `json:"college_id"`
	Name      string `json:"name"`
}

// CollegeListResponse 学院列表
type CollegeListResponse struct {
	Colleges []CollegeResponse `json:"colleges"`
}
