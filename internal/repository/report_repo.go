package repository

import (
	"context"

	"gorm.io/gorm"
)

// ── 报表查询结果 ──

// EventStatsRow 单个活动的聚合计数
// AverageRating 无反馈时为 nil
type EventStatsRow struct {
	TotalRegistrations int64
	AttendanceTotal    int64
	AttendancePresent  int64
	AverageRating      *float64
}

// PopularityRow 活动及其报名人数
type PopularityRow struct {
	EventID            int64
	Title              string
	Type               string
	Date               string
	CollegeID          int64
	TotalRegistrations int64
}

// ParticipationRow 学生出席的不同活动数
type ParticipationRow struct {
	StudentID      int64
	Name           string
	EventsAttended int64
}

// TopActiveRow 学生出席次数
type TopActiveRow struct {
	StudentID int64
	Name      string
	Attended  int64
}

// ReportRepository 报表聚合查询接口（只读）
type ReportRepository interface {
	// EventStats 单条语句内完成全部计数，保证读到同一快照
	EventStats(ctx context.Context, eventID int64) (*EventStatsRow, error)
	// Popularity 全部活动按报名数降序、event_id 升序
	Popularity(ctx context.Context) ([]PopularityRow, error)
	// StudentParticipation 学生不存在时返回 gorm.ErrRecordNotFound
	StudentParticipation(ctx context.Context, studentID int64) (*ParticipationRow, error)
	// TopActive 按出席次数降序、student_id 升序取前 limit 名
	TopActive(ctx context.Context, limit int) ([]TopActiveRow, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo 创建 ReportRepository 实例
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

const eventStatsSQL = `
SELECT
	(SELECT COUNT(*) FROM registrations WHERE event_id = @id)                       AS total_registrations,
	(SELECT COUNT(*) FROM attendance WHERE event_id = @id)                          AS attendance_total,
	(SELECT COUNT(*) FROM attendance WHERE event_id = @id AND status = 'present')   AS attendance_present,
	(SELECT AVG(rating) FROM feedback WHERE event_id = @id)                         AS average_rating`

func (r *reportRepo) EventStats(ctx context.Context, eventID int64) (*EventStatsRow, error) {
	var row EventStatsRow
	err := r.db.WithContext(ctx).
		Raw(eventStatsSQL, map[string]interface{}{"id": eventID}).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *reportRepo) Popularity(ctx context.Context) ([]PopularityRow, error) {
	var rows []PopularityRow
	err := r.db.WithContext(ctx).
		Table("events AS e").
		Select("e.event_id, e.title, e.type, e.date, e.college_id, COUNT(r.reg_id) AS total_registrations").
		Joins("LEFT JOIN registrations AS r ON r.event_id = e.event_id").
		Group("e.event_id").
		Order("total_registrations DESC, e.event_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepo) StudentParticipation(ctx context.Context, studentID int64) (*ParticipationRow, error) {
	var row ParticipationRow
	// 同一活动重复签到不会重复计数
	result := r.db.WithContext(ctx).
		Table("students AS s").
		Select("s.student_id, s.name, COUNT(DISTINCT CASE WHEN a.status = 'present' THEN a.event_id END) AS events_attended").
		Joins("LEFT JOIN attendance AS a ON a.student_id = s.student_id").
		Where("s.student_id = ?", studentID).
		Group("s.student_id").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *reportRepo) TopActive(ctx context.Context, limit int) ([]TopActiveRow, error) {
	var rows []TopActiveRow
	err := r.db.WithContext(ctx).
		Table("students AS s").
		Select("s.student_id, s.name, COUNT(CASE WHEN a.status = 'present' THEN 1 END) AS attended").
		Joins("LEFT JOIN attendance AS a ON a.student_id = s.student_id").
		Group("s.student_id").
		Order("attended DESC, s.student_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
