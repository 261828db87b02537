package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/logging"
	model "taskpro.com/taskpro/internal/models"
	repository "taskpro.com/taskpro/internal/repositories"
)

type NotificationService struct {
	notifications *repository.NotificationRepository
}

func NewNotificationService(notifications *repository.NotificationRepository) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Notify persists a message for the recipient. Failures are logged and
// swallowed: a lost notification must never roll back the operation that
// triggered it.
func (s *NotificationService) Notify(ctx context.Context, userID, message string) {
	if _, err := s.notifications.Create(ctx, userID, message); err != nil {
		logging.Logger.Warnf("failed to store notification for user %s: %v", userID, err)
	}
}

func (s *NotificationService) List(ctx context.Context, userID string, onlyUnread bool) ([]model.Notification, error) {
	return s.notifications.ListByUser(ctx, userID, onlyUnread)
}

// MarkRead flips the read flag. Only the recipient may do so; marking an
// already-read notification is a no-op.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, actorID string) error {
	notification, err := s.notifications.FindByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID != actorID {
		return apperrors.ErrNotAllowed
	}
	if notification.IsRead {
		return nil
	}

	return s.notifications.MarkRead(ctx, notification)
}
