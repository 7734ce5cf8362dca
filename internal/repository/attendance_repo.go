package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus-events/backend/internal/model"
	pkgerrors "campus-events/backend/pkg/errors"
)

// AttendanceRepository 签到数据访问接口
type AttendanceRepository interface {
	// Upsert 按 (student_id, event_id) 插入或覆盖状态
	// 学生或活动不存在返回 pkgerrors.ErrInvalidReference；覆盖时不回填 AttendanceID
	Upsert(ctx context.Context, att *model.Attendance) error
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Upsert(ctx context.Context, att *model.Attendance) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "event_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).
		Create(att).Error
	return pkgerrors.Translate(err)
}
