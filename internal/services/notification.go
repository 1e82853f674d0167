package services

import (
	"context"

	"github.com/mkobayashi-dev/freshtrack/internal/logger"
	"github.com/mkobayashi-dev/freshtrack/internal/models"
)

// NotificationReader defines owner-scoped read operations for notifications.
type NotificationReader interface {
	List(ctx context.Context, userID int64) ([]models.NotificationDB, error)
}

// NotificationService serves notification records. Records are passive:
// this service never schedules or delivers anything.
type NotificationService struct {
	readRepo NotificationReader
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(readRepo NotificationReader) *NotificationService {
	return &NotificationService{readRepo: readRepo}
}

// List returns the caller's notifications.
func (svc *NotificationService) List(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	notifications, err := svc.readRepo.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list notifications", "userID", userID, "err", err)
		return nil, err
	}
	return notifications, nil
}
