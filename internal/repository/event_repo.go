package repository

import (
	"context"

	"gorm.io/gorm"

	"campus-events/backend/internal/model"
	pkgerrors "campus-events/backend/pkg/errors"
)

// EventRepository 活动数据访问接口
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	// List 按 event_id 升序返回；eventType 非空时精确匹配类型
	List(ctx context.Context, eventType string) ([]model.Event, error)
}

type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return pkgerrors.Translate(r.db.WithContext(ctx).Create(event).Error)
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) List(ctx context.Context, eventType string) ([]model.Event, error) {
	var events []model.Event
	db := r.db.WithContext(ctx)

	if eventType != "" {
		db = db.Where("type = ?", eventType)
	}

	err := db.Order("event_id ASC").Find(&events).Error
	return events, err
}
