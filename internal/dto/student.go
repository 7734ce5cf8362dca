package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 创建学生请求
type CreateStudentRequest struct {
	Name      string   `json:"name"       binding:"required"`
	Email     string   `json:"email"      binding:"required"`
	CollegeID *FlexInt `json:"college_id" binding:"required"`
}
