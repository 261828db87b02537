package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskpro.com/taskpro/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, userID, message string) (*model.Notification, error) {
	notification := &model.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return nil, err
	}

	return notification, nil
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string, onlyUnread bool) ([]model.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc")

	if onlyUnread {
		query = query.Where("is_read = ?", false)
	}

	var notifications []model.Notification
	err := query.Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notification *model.Notification) error {
	notification.IsRead = true
	return r.db.WithContext(ctx).Save(notification).Error
}
