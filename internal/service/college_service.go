package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"campus-events/backend/internal/dto"
	"campus-events/backend/internal/model"
	"campus-events/backend/internal/repository"
)

// ── 学院模块业务错误 ──

var (
	ErrCollegeNotFound = errors.New("学院不存在")
)

// CollegeService 学院业务接口
type CollegeService interface {
	Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CreateCollegeResponse, error)
	List(ctx context.Context) (*dto.CollegeListResponse, error)
}

type collegeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCollegeService 创建 CollegeService 实例
func NewCollegeService(repo *repository.Repository, logger *zap.Logger) CollegeService {
	return &collegeService{repo: repo, logger: logger}
}

func (s *collegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CreateCollegeResponse, error) {
	college := &model.College{Name: req.Name}

	if err := s.repo.College.Create(ctx, college); err != nil {
		s.logger.Error("创建学院失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateCollegeResponse{CollegeID: college.CollegeID}, nil
}

func (s *collegeService) List(ctx context.Context) (*dto.CollegeListResponse, error) {
	colleges, err := s.repo.College.List(ctx)
	if err != nil {
		s.logger.Error("列出学院失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CollegeResponse, 0, len(colleges))
	for _, c := range colleges {
		result = append(result, dto.CollegeResponse{CollegeID: c.CollegeID, Name: c.Name})
	}

	return &dto.CollegeListResponse{Colleges: result}, nil
}
