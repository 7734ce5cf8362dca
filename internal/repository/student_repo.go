package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/backend/internal/model"
	pkgerrors "campus-events/backend/pkg/errors"
)

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	// Create 学院不存在时返回 pkgerrors.ErrInvalidReference
	Create(ctx context.Context, student *model.Student) error
	GetByID(ctx context.Context, id int64) (*model.Student, error)
	List(ctx context.Context, collegeID *int64) ([]model.Student, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Create(ctx context.Context, student *model.Student) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Create(student).Error)
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) List(ctx context.Context, collegeID *int64) ([]model.Student, error) {
	var students []model.Student
	db := r.db.WithContext(ctx)

	if collegeID != nil {
		db = db.Where("college_id = ?", *collegeID)
	}

	err := db.Order("student_id ASC").Find(&students).Error
	return students, err
}
