package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/model"
	"campus-events/backend/internal/repository"
	pkgerrors "campus-events/backend/pkg/errors"
)

// ── 报名/签到/反馈业务错误 ──

var (
	// ErrDuplicateOrInvalidReference 重复报名或学生/活动不存在，两种原因不做区分
	ErrDuplicateOrInvalidReference = errors.New("已报名或学生/活动不存在")
	ErrInvalidReference            = errors.New("学生或活动不存在")
	ErrInvalidRating               = errors.New("评分必须在 1-5 之间")
)

const (
	minRating = 1
	maxRating = 5
)

// ParticipationService 报名、签到与反馈业务接口
type ParticipationService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) error
	// RecordAttendance 同一 (学生, 活动) 重复签到覆盖旧状态，不报错
	RecordAttendance(ctx context.Context, req *dto.AttendanceRequest) error
	// RecordFeedback 同一 (学生, 活动) 重复反馈覆盖旧评分，不报错
	RecordFeedback(ctx context.Context, req *dto.FeedbackRequest) error
}

type participationService struct {
	repo         *repository.Repository
	strictRating bool
	logger       *zap.Logger
}

// NewParticipationService 创建 ParticipationService 实例
// strictRating 为 false 时评分只做整数转换，不校验范围
func NewParticipationService(repo *repository.Repository, strictRating bool, logger *zap.Logger) ParticipationService {
	return &participationService{repo: repo, strictRating: strictRating, logger: logger}
}

// ────────────────────── Register ──────────────────────

func (s *participationService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	reg := &model.Registration{
		StudentID: req.StudentID.Int64(),
		EventID:   req.EventID.Int64(),
	}

	err := s.repo.Registration.Create(ctx, reg)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pkgerrors.ErrDuplicateKey), errors.Is(err, pkgerrors.ErrInvalidReference):
		return ErrDuplicateOrInvalidReference
	default:
		s.logger.Error("报名失败",
			zap.Int64("student_id", reg.StudentID),
			zap.Int64("event_id", reg.EventID),
			zap.Error(err),
		)
		return err
	}
}

// ────────────────────── RecordAttendance ──────────────────────

func (s *participationService) RecordAttendance(ctx context.Context, req *dto.AttendanceRequest) error {
	att := &model.Attendance{
		StudentID: req.StudentID.Int64(),
		EventID:   req.EventID.Int64(),
		Status:    req.Status,
	}

	if err := s.repo.Attendance.Upsert(ctx, att); err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidReference) {
			return ErrInvalidReference
		}
		s.logger.Error("记录签到失败",
			zap.Int64("student_id", att.StudentID),
			zap.Int64("event_id", att.EventID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

// ────────────────────── RecordFeedback ──────────────────────

func (s *participationService) RecordFeedback(ctx context.Context, req *dto.FeedbackRequest) error {
	rating := req.Rating.Int64()
	if s.strictRating && (rating < minRating || rating > maxRating) {
		return ErrInvalidRating
	}

	fb := &model.Feedback{
		StudentID: req.StudentID.Int64(),
		EventID:   req.EventID.Int64(),
		Rating:    int(rating),
	}

	if err := s.repo.Feedback.Upsert(ctx, fb); err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidReference) {
			return ErrInvalidReference
		}
		s.logger.Error("记录反馈失败",
			zap.Int64("student_id", fb.StudentID),
			zap.Int64("event_id", fb.EventID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
