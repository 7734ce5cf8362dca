package service

import (
	"context"
	"errors"
	"math"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"campus-events/backend/config"
	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/repository"
)

// ── 报表模块业务错误 ──

var (
	ErrEventNotFound   = errors.New("活动不存在")
	ErrStudentNotFound = errors.New("学生不存在")
	ErrInvalidLimit    = errors.New("limit 必须为正整数")
)

// ReportService 报表业务接口（只读）
type ReportService interface {
	EventReport(ctx context.Context, eventID int64) (*dto.EventReportResponse, error)
	Popularity(ctx context.Context) (*dto.PopularityResponse, error)
	StudentParticipation(ctx context.Context, studentID int64) (*dto.StudentReportResponse, error)
	// TopActive limit 为 nil 时取配置默认值，超过上限时截断为上限；显式 0 返回空列表
	TopActive(ctx context.Context, limit *int) (*dto.TopActiveResponse, error)
	// FilterEvents eventType 为空时返回全部活动
	FilterEvents(ctx context.Context, eventType string) (*dto.EventListResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	cfg    *config.ReportConfig
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, cfg *config.ReportConfig, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, cfg: cfg, logger: logger}
}

// ────────────────────── EventReport ──────────────────────

func (s *reportService) EventReport(ctx context.Context, eventID int64) (*dto.EventReportResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		s.logger.Error("查询活动失败", zap.Int64("event_id", eventID), zap.Error(err))
		return nil, err
	}

	stats, err := s.repo.Report.EventStats(ctx, eventID)
	if err != nil {
		s.logger.Error("统计活动数据失败", zap.Int64("event_id", eventID), zap.Error(err))
		return nil, err
	}

	resp := &dto.EventReportResponse{
		Event:              toEventResponse(event),
		TotalRegistrations: stats.TotalRegistrations,
	}
	if stats.AttendanceTotal > 0 {
		pct := roundHalfEven2(float64(stats.AttendancePresent) / float64(stats.AttendanceTotal) * 100)
		resp.AttendancePercentage = &pct
	}
	if stats.AverageRating != nil {
		avg := round2(*stats.AverageRating)
		resp.AverageFeedback = &avg
	}

	return resp, nil
}

// ────────────────────── Popularity ──────────────────────

func (s *reportService) Popularity(ctx context.Context) (*dto.PopularityResponse, error) {
	rows, err := s.repo.Report.Popularity(ctx)
	if err != nil {
		s.logger.Error("查询活动热度失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.PopularityItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.PopularityItem{
			EventResponse: dto.EventResponse{
				EventID:   r.EventID,
				Title:     r.Title,
				Type:      r.Type,
				Date:      r.Date,
				CollegeID: r.CollegeID,
			},
			TotalRegistrations: r.TotalRegistrations,
		})
	}

	return &dto.PopularityResponse{Events: items}, nil
}

// ────────────────────── StudentParticipation ──────────────────────

func (s *reportService) StudentParticipation(ctx context.Context, studentID int64) (*dto.StudentReportResponse, error) {
	row, err := s.repo.Report.StudentParticipation(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生参与情况失败", zap.Int64("student_id", studentID), zap.Error(err))
		return nil, err
	}

	return &dto.StudentReportResponse{
		StudentID:      row.StudentID,
		Name:           row.Name,
		EventsAttended: row.EventsAttended,
	}, nil
}

// ────────────────────── TopActive ──────────────────────

func (s *reportService) TopActive(ctx context.Context, limitParam *int) (*dto.TopActiveResponse, error) {
	limit := s.cfg.TopActiveDefault
	if limitParam != nil {
		limit = *limitParam
	}
	switch {
	case limit < 0:
		return nil, ErrInvalidLimit
	case limit == 0:
		return &dto.TopActiveResponse{TopActive: []dto.TopActiveItem{}}, nil
	case s.cfg.TopActiveMax > 0 && limit > s.cfg.TopActiveMax:
		limit = s.cfg.TopActiveMax
	}

	rows, err := s.repo.Report.TopActive(ctx, limit)
	if err != nil {
		s.logger.Error("查询活跃学生失败", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}

	items := make([]dto.TopActiveItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TopActiveItem{
			StudentID: r.StudentID,
			Name:      r.Name,
			Attended:  r.Attended,
		})
	}

	return &dto.TopActiveResponse{TopActive: items}, nil
}

// ────────────────────── FilterEvents ──────────────────────

func (s *reportService) FilterEvents(ctx context.Context, eventType string) (*dto.EventListResponse, error) {
	events, err := s.repo.Event.List(ctx, eventType)
	if err != nil {
		s.logger.Error("筛选活动失败", zap.String("type", eventType), zap.Error(err))
		return nil, err
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, toEventResponse(&events[i]))
	}

	return &dto.EventListResponse{Events: result}, nil
}

// round2 四舍五入保留两位小数，与 SQLite ROUND 一致
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundHalfEven2 按浮点数的精确值保留两位小数，恰为中点时取偶（3.125 → 3.12）
func roundHalfEven2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return round2(v)
	}
	return r
}
