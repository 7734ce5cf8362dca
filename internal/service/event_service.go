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

// EventService 活动业务接口
type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error)
	// List 全部活动（含取消标记），供学生端浏览
	List(ctx context.Context) (*dto.EventDetailListResponse, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.CreateEventResponse, error) {
	event := &model.Event{
		Title:     req.Title,
		Type:      req.Type,
		Date:      req.Date,
		CollegeID: req.CollegeID.Int64(),
	}
	// 与整数转换保持一致：非 0 即取消
	if req.Cancelled != nil && req.Cancelled.Int64() != 0 {
		event.Cancelled = true
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidReference) {
			return nil, ErrCollegeNotFound
		}
		s.logger.Error("创建活动失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateEventResponse{EventID: event.EventID}, nil
}

// ────────────────────── List ──────────────────────

func (s *eventService) List(ctx context.Context) (*dto.EventDetailListResponse, error) {
	events, err := s.repo.Event.List(ctx, "")
	if err != nil {
		s.logger.Error("列出活动失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EventDetailResponse, 0, len(events))
	for i := range events {
		result = append(result, dto.EventDetailResponse{
			EventResponse: toEventResponse(&events[i]),
			Cancelled:     events[i].Cancelled,
		})
	}

	return &dto.EventDetailListResponse{Events: result}, nil
}

// ── 内部辅助方法 ──

func toEventResponse(e *model.Event) dto.EventResponse {
	return dto.EventResponse{
		EventID:   e.EventID,
		Title:     e.Title,
		Type:      e.Type,
		Date:      e.Date,
		CollegeID: e.CollegeID,
	}
}
