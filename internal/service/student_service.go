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

// StudentService 学生业务接口
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.CreateStudentResponse, error) {
	student := &model.Student{
		Name:      req.Name,
		Email:     req.Email,
		CollegeID: req.CollegeID.Int64(),
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		if errors.Is(err, pkgerrors.ErrInvalidReference) {
			return nil, ErrCollegeNotFound
		}
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateStudentResponse{StudentID: student.StudentID}, nil
}
