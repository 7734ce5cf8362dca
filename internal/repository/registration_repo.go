package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/backend/internal/model"
	pkgerrors "campus-events/backend/pkg/errors"
)

// RegistrationRepository 报名数据访问接口
type RegistrationRepository interface {
	// Create 重复报名返回 pkgerrors.ErrDuplicateKey，学生或活动不存在返回 pkgerrors.ErrInvalidReference
	Create(ctx context.Context, reg *model.Registration) error
}

type registrationRepo struct {
	db *gorm.DB
}

// NewRegistrationRepo 创建 RegistrationRepository 实例
func NewRegistrationRepo(db *gorm.DB) RegistrationRepository {
	return &registrationRepo{db: db}
}

func (r *registrationRepo) Create(ctx context.Context, reg *model.Registration) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Create(reg).Error)
}
