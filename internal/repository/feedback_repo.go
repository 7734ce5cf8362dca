package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus-events/backend/internal/model"
	pkgerrors "campus-events/backend/pkg/errors"
)

// FeedbackRepository 反馈数据访问接口
type FeedbackRepository interface {
	// Upsert 按 (student_id, event_id) 插入或覆盖评分
	Upsert(ctx context.Context, fb *model.Feedback) error
}

type feedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo 创建 FeedbackRepository 实例
func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Upsert(ctx context.Context, fb *model.Feedback) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "event_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(fb).Error
	return pkgerrors.Translate(err)
}
